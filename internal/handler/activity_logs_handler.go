package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/service"
)

// ActivityLogsHandler exposes the audit trail endpoints.
type ActivityLogsHandler struct {
	activity *service.ActivityService
}

// NewActivityLogsHandler creates a new handler instance.
func NewActivityLogsHandler(activity *service.ActivityService) *ActivityLogsHandler {
	return &ActivityLogsHandler{activity: activity}
}

// List handles GET /activity-logs requests, optionally scoped to one
// company via the companyId query parameter.
func (h *ActivityLogsHandler) List(c echo.Context) error {
	logs, err := h.activity.ListActivityLogs(c.Request().Context(), c.QueryParam("companyId"))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, "activity logs retrieved", logs)
}

// Create handles POST /activity-logs requests.
func (h *ActivityLogsHandler) Create(c echo.Context) error {
	var req dto.CreateActivityLogRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request payload")
	}

	log, err := h.activity.CreateActivityLog(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusCreated, "activity log created", log)
}
