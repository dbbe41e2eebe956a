package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"`
	Deadline    string `json:"deadline"`
	Progress    int    `json:"progress"`
	Color       string `json:"color"`
	Status      string `json:"status"`
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project payload"
// @Success 201 {object} apperrors.MessageResponse
// @Failure 400 {object} apperrors.MessageResponse
// @Failure 503 {object} apperrors.MessageResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		Deadline:    req.Deadline,
		Progress:    req.Progress,
		Color:       req.Color,
		Status:      req.Status,
	}
	if _, err := h.projectService.CreateProject(c.Request().Context(), project); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, apperrors.MessageResponse{Message: "Project created."})
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}
