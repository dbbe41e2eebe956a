package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/cache"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/repository"
	"github.com/Shriii19/TaskFlow/internal/sanitize"
)

const projectsListCacheKey = "projects:list"

const (
	defaultProjectColor = "#3b82f6"
	defaultStatus       = "todo"
)

// ProjectService exposes project operations.
type ProjectService interface {
	CreateProject(ctx context.Context, project *model.Project) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService builds a ProjectService with repository and cache.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, cache: cache}
}

// CreateProject strips markup from free-text fields, applies defaults and
// inserts the record. ManagerID is stored as an opaque identifier without an
// existence check.
func (s *projectService) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	project.Name = sanitize.Field(project.Name)
	project.Description = sanitize.Field(project.Description)
	project.ManagerID = sanitize.Field(project.ManagerID)
	project.Deadline = sanitize.Field(project.Deadline)
	project.Status = sanitize.Field(project.Status)
	project.Color = sanitize.Field(project.Color)

	if project.Name == "" {
		return nil, apperrors.ErrIncompleteRequest
	}
	if project.Status == "" {
		project.Status = defaultStatus
	}
	if project.Color == "" {
		project.Color = defaultProjectColor
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	_ = s.cache.Delete(ctx, projectsListCacheKey)
	return project, nil
}

// ListProjects returns all projects in store order, cached briefly.
func (s *projectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectsListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectsListCacheKey, payload, listCacheTTL)
	}
	return projects, nil
}
