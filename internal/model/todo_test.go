package model_test

import (
	"testing"

	"github.com/dayoon-choi/todolist/internal/model"
)

func TestTodoStatus_IsValid(t *testing.T) {
	tests := []struct {
		status model.TodoStatus
		want   bool
	}{
		{model.TodoStatusPending, true},
		{model.TodoStatusCompleted, true},
		{model.TodoStatusCancelled, true},
		{"", false},
		{"pending", false},
		{"DONE", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
