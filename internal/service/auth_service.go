package service

import (
	"context"
	"errors"

	dom "github.com/selmenealex/my-finance/internal/domain"
	"github.com/selmenealex/my-finance/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const bcryptCost = 10

// AuthService handles registration and credential checks.
type AuthService struct {
	repo repo.UserRepo
}

// NewAuthService returns a new AuthService.
func NewAuthService(r repo.UserRepo) *AuthService {
	return &AuthService{repo: r}
}

// Register creates a new account seeded with the default data blob. Nothing
// sensitive is returned.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, username, string(hash), dom.DefaultData(username)); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login verifies the credentials and returns the user. A missing account and
// a wrong password both come back as ErrInvalidCredentials so the caller
// cannot tell which one failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
