package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/cache"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/repository"
	"github.com/Shriii19/TaskFlow/internal/sanitize"
)

// AuthService handles the credential lifecycle: registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, cache *cache.Client) AuthService {
	return &authService{userRepo: userRepo, cache: cache}
}

// Register creates a new user with a freshly hashed password. Free-text
// fields are stripped of markup before storage; the role must belong to the
// closed set. Uniqueness of the email is enforced by the store and surfaced
// as ErrDuplicateCredential.
func (s *authService) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	username = sanitize.Field(username)
	email = sanitize.Field(email)
	role = sanitize.Field(role)

	if username == "" || email == "" || strings.TrimSpace(password) == "" || role == "" {
		return nil, apperrors.ErrIncompleteRequest
	}
	if !model.Role(role).Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.Role(role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, apperrors.ErrDuplicateCredential
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	_ = s.cache.Delete(ctx, usersListCacheKey)
	return user, nil
}

// Login verifies a claimed email/password pair. An unknown email and a
// wrong password return the identical ErrAuthFailed so callers cannot probe
// for account existence. Read-only: no session or token is created.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, apperrors.ErrIncompleteRequest
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrAuthFailed
	}

	return user, nil
}
