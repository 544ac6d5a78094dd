package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Each connection to :memory: is a separate empty database, so the
	// pool must never grow past one connection.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, description, created_at)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Title, task.Description, FormatTimeForDB(task.CreatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, title, description, created_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, title, description, created_at
	FROM tasks
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM tasks`
	return QueryCount(ctx, r.db, query, "tasks")
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
