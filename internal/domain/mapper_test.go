package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-manager/internal/repository/sqlite"
)

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	domainTask := mapper.FromDatabase(sqlite.Task{
		ID:          7,
		Title:       "Review PR",
		Description: "The repository refactor",
		CreatedAt:   created,
	})

	assert.Equal(t, int64(7), domainTask.ID)
	assert.Equal(t, "Review PR", domainTask.Title)
	assert.Equal(t, "The repository refactor", domainTask.Description)
	assert.Equal(t, created, domainTask.CreatedAt)
}

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	dbTask := mapper.ToDatabase(Task{
		ID:          3,
		Title:       "Plan sprint",
		Description: "",
		CreatedAt:   created,
	})

	assert.Equal(t, int64(3), dbTask.ID)
	assert.Equal(t, "Plan sprint", dbTask.Title)
	assert.Empty(t, dbTask.Description)
	assert.Equal(t, created, dbTask.CreatedAt)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper.Task)
}
