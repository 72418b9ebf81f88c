package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoapp/task-manager/internal/core/domain"
	"github.com/todoapp/task-manager/internal/core/ports"
)

type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger, now: time.Now}
}

// ListTasks returns the caller's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	return s.repo.FindByIDAndOwner(ctx, id, userID)
}

// CreateTask stores a new, not yet completed task owned by userID.
func (s *TaskService) CreateTask(ctx context.Context, userID, text string) (*domain.Task, error) {
	if !domain.ValidTaskText(text) {
		return nil, domain.ErrEmptyTaskText
	}

	task := &domain.Task{
		UserID:    userID,
		Text:      text,
		Completed: false,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("user_id", userID).Msg("task created")
	return task, nil
}

// UpdateTask applies a partial update. A present but blank Text is rejected;
// an empty patch returns the task unchanged.
func (s *TaskService) UpdateTask(ctx context.Context, id, userID string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Text != nil && !domain.ValidTaskText(*patch.Text) {
		return nil, domain.ErrEmptyTaskText
	}
	if patch.IsEmpty() {
		return s.repo.FindByIDAndOwner(ctx, id, userID)
	}

	task, err := s.repo.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("task_id", id).Str("user_id", userID).Msg("task updated")
	return task, nil
}

// DeleteTask removes the task if the caller owns it. Deleting a task that does
// not exist (or belongs to someone else) is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Debug().Str("task_id", id).Str("user_id", userID).Msg("task delete requested")
	return nil
}
