package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/partner-intelligence/api/internal/auth"
	"github.com/octobees/partner-intelligence/api/internal/config"
	"github.com/octobees/partner-intelligence/api/internal/handler"
	middlewarepkg "github.com/octobees/partner-intelligence/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserAdminHandler
	Companies    *handler.CompaniesHandler
	Analytics    *handler.AnalyticsHandler
	ActivityLogs *handler.ActivityLogsHandler
	TeamMembers  *handler.TeamMembersHandler
	Generate     *handler.GenerateHandler
}

// Register wires all HTTP routes for the API. Reads are public; mutations
// and AI generation require a valid token, user administration requires the
// admin role.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	e.GET("/companies", handlers.Companies.List)
	e.GET("/companies/:id", handlers.Companies.Get)
	e.GET("/analytics", handlers.Analytics.Overview)
	e.GET("/activity-logs", handlers.ActivityLogs.List)
	e.GET("/team-members", handlers.TeamMembers.List)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/companies", handlers.Companies.Create)
	secured.PATCH("/companies/:id", handlers.Companies.Update)
	secured.DELETE("/companies/:id", handlers.Companies.Delete)
	secured.POST("/activity-logs", handlers.ActivityLogs.Create)
	secured.POST("/team-members", handlers.TeamMembers.Create)

	generateLimiter := middlewarepkg.GenerateRateLimiter(cfg.RateLimitGenerate)
	secured.POST("/companies/:id/generate-competitive-analysis", handlers.Generate.CompetitiveAnalysis, generateLimiter)
	secured.POST("/companies/:id/generate-opportunity-assessment", handlers.Generate.OpportunityAssessment, generateLimiter)
	secured.POST("/companies/:id/generate-digital-twin-strategy", handlers.Generate.DigitalTwinStrategy, generateLimiter)

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)
}
