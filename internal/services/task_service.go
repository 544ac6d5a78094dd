package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	logger *zap.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		logger: logger,
	}
}

// AddTask stores a new task with the given title and description
func (t *taskServiceImpl) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	task := domain.NewTask(title, description)
	task.CreatedAt = timeNow()

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	t.logger.Debug("task added",
		zap.Int64("id", dbTask.ID),
		zap.String("title", dbTask.Title))

	domainTask := t.mapper.Task.FromDatabase(dbTask)
	return &domainTask, nil
}

// GetAllTasks retrieves all tasks in creation order
func (t *taskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("tasks listed", zap.Int("count", len(dbTasks)))

	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := t.mapper.Task.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask removes a task by its ID
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	t.logger.Debug("task deleted", zap.Int64("id", id))
	return nil
}

// CountTasks returns the number of stored tasks
func (t *taskServiceImpl) CountTasks(ctx context.Context) (int, error) {
	return t.repo.CountTasks(ctx)
}
