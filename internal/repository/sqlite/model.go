package sqlite

import "time"

// Task represents a task row in the tasks table
type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}
