package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/partner-intelligence/api/internal/service"
)

// AnalyticsHandler exposes the dashboard aggregation endpoint.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new handler instance.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview handles GET /analytics requests.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.analytics.Overview(c.Request().Context())
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, "analytics computed", overview)
}
