package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayoon-choi/todolist/internal/service"
	"github.com/dayoon-choi/todolist/internal/validation"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Success bool                     `json:"success"`
	Errors  []validation.FieldError  `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

func WriteValidationErrors(w http.ResponseWriter, errs []validation.FieldError) {
	WriteJSON(w, http.StatusBadRequest, ValidationResponse{Success: false, Errors: errs})
}

// WriteServiceError maps the service error kinds to status codes. Internal
// errors get a fixed message so no persistence detail reaches the client.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		WriteMessage(w, http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, service.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, "Todo not found")
	case errors.Is(err, service.ErrConflict):
		WriteMessage(w, http.StatusConflict, "a user with this email already exists")
	default:
		slog.Error("internal error", "error", err)
		WriteMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
