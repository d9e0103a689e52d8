package repository

import (
	"context"

	"github.com/dayoon-choi/todolist/internal/model"
)

// TodoRepository persists todos scoped by owning user. Update and Delete match
// on (id AND user_id) in a single statement and return sql.ErrNoRows when no
// record matches both — a miss on a foreign owner's record is indistinguishable
// from a miss on a nonexistent one.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Todo, error)
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	Update(ctx context.Context, userID, todoID string, patch model.TodoPatch) (model.Todo, error)
	Delete(ctx context.Context, userID, todoID string) (model.Todo, error)
}
