package ports

import (
	"context"

	"github.com/todoapp/task-manager/internal/core/domain"
)

// TaskService defines use-case operations for a caller's tasks.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]*domain.Task, error)
	GetTask(ctx context.Context, id, userID string) (*domain.Task, error)
	CreateTask(ctx context.Context, userID, text string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id, userID string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id, userID string) error
}
