package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dayoon-choi/todolist/internal/model"
	"github.com/dayoon-choi/todolist/internal/repository"
)

type CreateTodoInput struct {
	Title       string
	Description string
	Status      model.TodoStatus
}

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	todos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, userID string, input CreateTodoInput) (model.Todo, error) {
	if input.Title == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = model.TodoStatusPending
	}
	if !status.IsValid() {
		return model.Todo{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	todo := model.Todo{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return created, nil
}

// Update mutates only the fields present in patch. The repository matches the
// record on (id AND owner) in one statement; no match surfaces as ErrNotFound
// whether the todo is missing or owned by another user.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, patch model.TodoPatch) (model.Todo, error) {
	if patch.Title != nil && *patch.Title == "" {
		return model.Todo{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return model.Todo{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *patch.Status)
	}

	updated, err := s.repo.Update(ctx, userID, todoID, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return updated, nil
}

// Delete removes the todo and returns its final snapshot.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) (model.Todo, error) {
	deleted, err := s.repo.Delete(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to delete todo: %w", err)
	}
	return deleted, nil
}
