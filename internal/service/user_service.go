package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Shriii19/TaskFlow/internal/cache"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/repository"
)

const (
	usersListCacheKey = "users:list"
	listCacheTTL      = 5 * time.Minute
)

// UserService exposes read operations over the user table.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// ListUsers returns all users without their password hashes. The projection
// is cached briefly; registration invalidates it.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, usersListCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, usersListCacheKey, payload, listCacheTTL)
	}
	return users, nil
}
