package services

import (
	"context"

	"task-manager/internal/domain"
)

// TaskService handles task lifecycle operations. It forwards to the
// repository through the domain mapper and adds no business rules of its
// own.
type TaskService interface {
	// AddTask stores a new task and returns it with its assigned ID.
	AddTask(ctx context.Context, title, description string) (*domain.Task, error)

	// GetAllTasks returns every stored task in creation order.
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask returns a single task by ID.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id int64) error

	// CountTasks returns the number of stored tasks.
	CountTasks(ctx context.Context) (int, error)
}
