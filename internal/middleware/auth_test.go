package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayoon-choi/todolist/internal/middleware"
	"github.com/dayoon-choi/todolist/internal/token"
)

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	auth := middleware.NewAuth(tokens)

	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	var capturedUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("token", signed)
	w := httptest.NewRecorder()

	auth.Middleware(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	if capturedUserID != "user-1" {
		t.Errorf("expected userID=user-1 in context, got %q", capturedUserID)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	auth := middleware.NewAuth(tokens)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	w := httptest.NewRecorder()

	auth.Middleware(inner).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "token" {
		t.Errorf("expected a single error on field token, got %+v", body.Errors)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	auth := middleware.NewAuth(tokens)

	other := token.NewManager("other-secret", time.Hour)
	forged, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	expired, err := token.NewManager("test-secret", -time.Minute).Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", forged},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("inner handler should not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			req.Header.Set("token", tt.tokenString)
			w := httptest.NewRecorder()

			auth.Middleware(inner).ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["message"] == "" {
				t.Error("expected a message in the error body")
			}
		})
	}
}
