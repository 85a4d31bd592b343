package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/service"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

// lookupError maps the site service's not-found sentinels to 404 responses.
func lookupError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		return Error(c, http.StatusNotFound, "service not found")
	case errors.Is(err, service.ErrPageNotFound):
		return Error(c, http.StatusNotFound, "page not found")
	case errors.Is(err, service.ErrSchemaNotFound):
		return Error(c, http.StatusNotFound, "schema not found")
	default:
		return Error(c, http.StatusInternalServerError, "unable to build response")
	}
}
