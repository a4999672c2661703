package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/partner-intelligence/api/internal/repository"
	"github.com/octobees/partner-intelligence/api/internal/service"
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

// ServiceError maps domain errors onto HTTP responses: validation failures
// become 400, unknown companies 404, generator failures 502, everything
// else a generic 500.
func ServiceError(c echo.Context, err error) error {
	var vErr service.ValidationError
	if errors.As(err, &vErr) {
		return Error(c, http.StatusBadRequest, vErr.Message)
	}
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return Error(c, http.StatusNotFound, "company not found")
	}
	var genErr service.GenerationError
	if errors.As(err, &genErr) {
		return Error(c, http.StatusBadGateway, genErr.Error())
	}
	return Error(c, http.StatusInternalServerError, "internal server error")
}
