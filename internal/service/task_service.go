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

const taskListCacheKey = "tasks:list"

const defaultTaskPriority = "medium"

// TaskService exposes task operations.
type TaskService interface {
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
}

type taskService struct {
	repo  repository.TaskRepository
	cache *cache.Client
}

// NewTaskService builds a TaskService with repository and cache.
func NewTaskService(repo repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{repo: repo, cache: cache}
}

// CreateTask strips markup from free-text fields, applies defaults and
// inserts the record. ProjectID and AssignedTo are stored as opaque
// identifiers without existence checks.
func (s *taskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.Title = sanitize.Field(task.Title)
	task.Description = sanitize.Field(task.Description)
	task.ProjectID = sanitize.Field(task.ProjectID)
	task.AssignedTo = sanitize.Field(task.AssignedTo)
	task.Priority = sanitize.Field(task.Priority)
	task.Status = sanitize.Field(task.Status)
	task.DueDate = sanitize.Field(task.DueDate)

	if task.Title == "" || task.ProjectID == "" {
		return nil, apperrors.ErrIncompleteRequest
	}
	if task.Priority == "" {
		task.Priority = defaultTaskPriority
	}
	if task.Status == "" {
		task.Status = defaultStatus
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	_ = s.cache.Delete(ctx, taskListCacheKey)
	return task, nil
}

// ListTasks returns all tasks in store order, cached briefly.
func (s *taskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	if data, _ := s.cache.Get(ctx, taskListCacheKey); data != nil {
		var cached []model.Task
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(tasks); err == nil {
		_ = s.cache.Set(ctx, taskListCacheKey, payload, listCacheTTL)
	}
	return tasks, nil
}
