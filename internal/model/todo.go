package model

import "time"

type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "PENDING"
	TodoStatusCompleted TodoStatus = "COMPLETED"
	TodoStatusCancelled TodoStatus = "CANCELLED"
)

func (s TodoStatus) IsValid() bool {
	return s == TodoStatusPending || s == TodoStatusCompleted || s == TodoStatusCancelled
}

type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
	Comment     string     `json:"comment"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TodoPatch carries a partial update. Nil fields are left unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *TodoStatus
	Comment     *string
}
