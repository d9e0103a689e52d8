package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dayoon-choi/todolist/internal/middleware"
	"github.com/dayoon-choi/todolist/internal/model"
	"github.com/dayoon-choi/todolist/internal/service"
	"github.com/dayoon-choi/todolist/internal/validation"
)

// TodoHandler serves the todo CRUD routes. All routes sit behind the auth
// gate, so the owning user id is always present in the request context.
type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	todos, err := h.svc.List(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req validation.TodoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.Check(req); errs != nil {
		WriteValidationErrors(w, errs)
		return
	}

	todo, err := h.svc.Create(r.Context(), userID, service.CreateTodoInput{
		Title:       req.Title,
		Description: *req.Description,
		Status:      req.StatusOrDefault(),
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req validation.TodoUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.Check(req); errs != nil {
		WriteValidationErrors(w, errs)
		return
	}

	patch := model.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      (*model.TodoStatus)(req.Status),
		Comment:     req.Comment,
	}

	todo, err := h.svc.Update(r.Context(), userID, todoID, patch)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

type deleteResponse struct {
	Message string     `json:"message"`
	Todo    model.Todo `json:"todo"`
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Delete(r.Context(), userID, todoID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, deleteResponse{
		Message: "Todo deleted successfully",
		Todo:    todo,
	})
}

// todoID validates the path parameter and writes the validation failure
// itself when the id is not a well-formed uuid.
func (h *TodoHandler) todoID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if errs := validation.Check(validation.IdParam{ID: id}); errs != nil {
		WriteValidationErrors(w, errs)
		return "", false
	}
	return id, true
}
