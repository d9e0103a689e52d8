package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dayoon-choi/todolist/internal/token"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	signed, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected userID=user-1, got %s", userID)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer := token.NewManager("secret-a", time.Hour)
	verifier := token.NewManager("secret-b", time.Hour)

	signed, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	m := token.NewManager("test-secret", -time.Minute)

	signed, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	tests := []string{"", "not-a-token", "a.b.c"}
	for _, tokenString := range tests {
		if _, err := m.Verify(tokenString); !errors.Is(err, token.ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", tokenString, err)
		}
	}
}
