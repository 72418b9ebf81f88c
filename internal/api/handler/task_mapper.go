package handler

import (
	"github.com/todoapp/task-manager/internal/core/domain"
)

func toTaskPatch(r updateTaskRequest) domain.TaskPatch {
	return domain.TaskPatch{Text: r.Text, Completed: r.Completed}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC(),
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
