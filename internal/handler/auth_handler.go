package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse confirms a created user. The password hash is never part
// of any response.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// LoginResponse carries the successful-login payload.
type LoginResponse struct {
	Message  string     `json:"message"`
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} apperrors.MessageResponse
// @Failure 409 {object} apperrors.MessageResponse
// @Failure 503 {object} apperrors.MessageResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User was created.",
		ID:      user.ID,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} apperrors.MessageResponse
// @Failure 401 {object} apperrors.MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrIncompleteRequest
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful.",
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}
