package ports

import (
	"context"

	"github.com/todoapp/task-manager/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every lookup is
// scoped by owner: a task owned by someone else behaves exactly like a task
// that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// ListByOwner returns the owner's tasks, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error)
	// FindByIDAndOwner returns domain.ErrTaskNotFound for missing or foreign tasks.
	FindByIDAndOwner(ctx context.Context, id, userID string) (*domain.Task, error)
	// Update applies the non-nil fields of patch and returns the stored result.
	Update(ctx context.Context, id, userID string, patch domain.TaskPatch) (*domain.Task, error)
	// DeleteByIDAndOwner is a no-op when nothing matches.
	DeleteByIDAndOwner(ctx context.Context, id, userID string) error
}
