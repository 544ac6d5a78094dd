package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Write docs", "Document the menu commands")

	assert.Equal(t, int64(0), task.ID)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, "Document the menu commands", task.Description)
	assert.True(t, task.CreatedAt.IsZero())
}

func TestTask_IsValid(t *testing.T) {
	assert.True(t, NewTask("titled", "").IsValid())
	assert.False(t, NewTask("", "description only").IsValid())
}

func TestTask_String(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected string
	}{
		{
			name:     "should join title and description",
			task:     NewTask("Buy milk", "2 liters"),
			expected: "Buy milk: 2 liters",
		},
		{
			name:     "should show bare title without description",
			task:     NewTask("Buy milk", ""),
			expected: "Buy milk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.String())
		})
	}
}
