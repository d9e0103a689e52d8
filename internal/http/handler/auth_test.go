package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayoon-choi/todolist/internal/http/handler"
	"github.com/dayoon-choi/todolist/internal/model"
	"github.com/dayoon-choi/todolist/internal/repository"
	"github.com/dayoon-choi/todolist/internal/service"
	"github.com/dayoon-choi/todolist/internal/token"
)

type fakeUserRepo struct {
	byEmail map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return model.User{}, repository.ErrDuplicateEmail
	}
	user.ID = "user-1"
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return user, nil
}

func newAuthHandler(repo repository.UserRepository) *handler.AuthHandler {
	tokens := token.NewManager("test-secret", time.Hour)
	return handler.NewAuthHandler(service.NewAuthService(repo, tokens, bcrypt.MinCost))
}

func TestAuthHandler_SignUp(t *testing.T) {
	h := newAuthHandler(newFakeUserRepo())

	body := `{"email":"a@b.com","password":"secret1","name":"A"}`
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.SignUp(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["id"] == "" || resp["email"] != "a@b.com" || resp["name"] != "A" {
		t.Errorf("unexpected response: %v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Error("response must not contain a password field")
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"bad email", `{"email":"not-an-email","password":"secret1","name":"A"}`, "email"},
		{"short password", `{"email":"a@b.com","password":"short","name":"A"}`, "password"},
		{"missing name", `{"email":"a@b.com","password":"secret1"}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(newFakeUserRepo())

			req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.SignUp(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}

			var resp handler.ValidationResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Success {
				t.Error("expected success=false")
			}

			found := false
			for _, fe := range resp.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error for field %q, got %v", tt.wantField, resp.Errors)
			}
		})
	}
}

func TestAuthHandler_SignUp_MalformedBody(t *testing.T) {
	h := newAuthHandler(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.SignUp(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestAuthHandler_SignUp_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	h := newAuthHandler(repo)

	body := `{"email":"a@b.com","password":"secret1","name":"A"}`
	first := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	h.SignUp(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.SignUp(w, second)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Login(t *testing.T) {
	repo := newFakeUserRepo()
	h := newAuthHandler(repo)

	signup := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(`{"email":"a@b.com","password":"secret1","name":"A"}`))
	h.SignUp(httptest.NewRecorder(), signup)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"success", `{"email":"a@b.com","password":"secret1"}`, http.StatusOK},
		{"wrong password", `{"email":"a@b.com","password":"nope123"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"x@b.com","password":"secret1"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Login(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}

			if tt.wantCode == http.StatusOK {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp["token"] == "" {
					t.Error("expected a token in the response")
				}
			} else {
				var resp handler.MessageResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Message != "Invalid Credentials" {
					t.Errorf("expected uniform failure message, got %q", resp.Message)
				}
			}
		})
	}
}
