package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayoon-choi/todolist/internal/model"
	"github.com/dayoon-choi/todolist/internal/repository"
)

// TokenIssuer signs a bearer token embedding the given user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService handles signup and login against the local credential store.
type AuthService struct {
	users      repository.UserRepository
	issuer     TokenIssuer
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, issuer TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignUpOutput is the public view of a created user. It never carries the
// password hash.
type SignUpOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string `json:"token"`
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (SignUpOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return SignUpOutput{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return SignUpOutput{}, fmt.Errorf("%w: a user with this email already exists", ErrConflict)
		}
		return SignUpOutput{}, fmt.Errorf("failed to create user: %w", err)
	}

	return SignUpOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email and
// wrong password fail identically so the endpoint cannot be used to enumerate
// registered addresses.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginOutput{}, ErrUnauthorized
		}
		return LoginOutput{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return LoginOutput{}, ErrUnauthorized
	}

	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return LoginOutput{Token: signed}, nil
}
