package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTaskText = errors.New("task cannot be empty")
)

// Task is a to-do item. UserID is always the authenticated caller at creation
// time and never changes afterwards.
type Task struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskPatch carries a partial update. A nil field is left untouched, so an
// explicit Completed=false is distinguishable from an omitted one.
type TaskPatch struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil
}

// ValidTaskText reports whether text has at least one non-space character.
func ValidTaskText(text string) bool {
	return strings.TrimSpace(text) != ""
}
