package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id" validate:"required"`
	AssignedTo  string `json:"assigned_to"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task payload"
// @Success 201 {object} apperrors.MessageResponse
// @Failure 400 {object} apperrors.MessageResponse
// @Failure 503 {object} apperrors.MessageResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
	if _, err := h.taskService.CreateTask(c.Request().Context(), task); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, apperrors.MessageResponse{Message: "Task created."})
}

// ListTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}
