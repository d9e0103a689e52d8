package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dayoon-choi/todolist/internal/model"
)

type PostgresTodoRepository struct {
	db *sql.DB
}

func NewPostgresTodo(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) ListByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	query := `
		SELECT id, user_id, title, description, status, comment, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

func (r *PostgresTodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `
		INSERT INTO todos (id, user_id, title, description, status, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, description, status, comment, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), todo.UserID, todo.Title, todo.Description, todo.Status, todo.Comment,
	)

	return scanTodo(row)
}

// Update applies the patch in a single statement so the ownership check and the
// mutation cannot be separated. Nil patch fields keep the stored value.
func (r *PostgresTodoRepository) Update(ctx context.Context, userID, todoID string, patch model.TodoPatch) (model.Todo, error) {
	query := `
		UPDATE todos
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    status = COALESCE($3, status),
		    comment = COALESCE($4, comment),
		    updated_at = now()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, title, description, status, comment, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		patch.Title, patch.Description, (*string)(patch.Status), patch.Comment, todoID, userID,
	)

	return scanTodo(row)
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, userID, todoID string) (model.Todo, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, status, comment, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, todoID, userID)
	return scanTodo(row)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTodo(row scannable) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description,
		&t.Status, &t.Comment, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Todo{}, err
		}
		return model.Todo{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	return t, nil
}

var _ TodoRepository = (*PostgresTodoRepository)(nil)
