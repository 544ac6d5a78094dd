package domain

import (
	"fmt"
	"time"
)

// TaskMaxLength is the declared upper bound for a task description.
// Nothing enforces it; input validation is deliberately out of scope.
const TaskMaxLength = 100

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}

// NewTask creates a new Task with the given title and description.
func NewTask(title, description string) Task {
	return Task{
		Title:       title,
		Description: description,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != ""
}

// String returns the task in display form.
func (t Task) String() string {
	if t.Description == "" {
		return t.Title
	}
	return fmt.Sprintf("%s: %s", t.Title, t.Description)
}
