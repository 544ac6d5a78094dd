package cli

import (
	"context"
	"fmt"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// mockTaskService implements the services.TaskService interface for testing
type mockTaskService struct {
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
	err    error // when set, every operation fails with this error
}

// newMockTaskService creates a new mock TaskService instance
func newMockTaskService() *mockTaskService {
	return &mockTaskService{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (m *mockTaskService) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}

	task := &domain.Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
	m.tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	m.nextID++

	return task, nil
}

func (m *mockTaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}

	tasks := make([]*domain.Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, m.tasks[id])
	}
	return tasks, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}

	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return task, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}

	if _, exists := m.tasks[id]; !exists {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(m.tasks, id)
	for i, orderedID := range m.order {
		if orderedID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockTaskService) CountTasks(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.tasks), nil
}
