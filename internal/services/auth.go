package services

import (
	"context"
	"errors"
	"strings"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// AuthService handles registration and credential verification. No
// plaintext password is ever persisted or logged; hashing goes through
// bcrypt and comparison through its constant-time check.
type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates an account. The username must be unused and the role
// must be one of the two permitted values; the role is fixed at
// registration time.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return types.User{}, invalidField("username", "required")
	}
	if password == "" {
		return types.User{}, invalidField("password", "required")
	}
	parsedRole, err := types.ParseRole(role)
	if err != nil {
		return types.User{}, invalidField("role", "must be gym_goer or personal_trainer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	// The unique index on username is the authoritative duplicate
	// check; the repository maps the violation to store.ErrDuplicate.
	return s.repo.Create(ctx, types.User{
		Username:     username,
		Role:         parsedRole,
		PasswordHash: string(hashed),
	})
}

// Login verifies credentials and returns the account on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return types.User{}, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID loads an account by id.
func (s *AuthService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}
