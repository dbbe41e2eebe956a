package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	// ErrIncompleteRequest is returned when a required field is missing or empty.
	ErrIncompleteRequest = errors.New("incomplete data")
	// ErrInvalidRole is returned when a registration carries an unknown role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrAuthFailed is returned for any bad email/password combination.
	// Unknown email and wrong password intentionally share this error so the
	// caller cannot tell accounts apart.
	ErrAuthFailed = errors.New("login failed")
	// ErrDuplicateCredential is returned when the store reports a uniqueness
	// conflict on the registration email.
	ErrDuplicateCredential = errors.New("email already registered")
	// ErrStoreUnavailable is returned for any other store write failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// MessageResponse is the canonical JSON envelope for every error and for
// plain confirmation bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPStatus maps a domain error to its HTTP status code and client-facing
// message.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrIncompleteRequest):
		return http.StatusBadRequest, "Incomplete data."
	case errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role."
	case errors.Is(err, ErrAuthFailed):
		return http.StatusUnauthorized, "Login failed."
	case errors.Is(err, ErrDuplicateCredential):
		return http.StatusConflict, "Email already registered."
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Service unavailable."
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, MessageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: bind failures, 404/405 from the router, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	code, msg := HTTPStatus(err)
	if code == http.StatusInternalServerError || code == http.StatusServiceUnavailable {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return code, msg
}
