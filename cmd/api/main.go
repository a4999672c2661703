package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/octobees/partner-intelligence/api/internal/ai"
	"github.com/octobees/partner-intelligence/api/internal/auth"
	"github.com/octobees/partner-intelligence/api/internal/config"
	"github.com/octobees/partner-intelligence/api/internal/database"
	"github.com/octobees/partner-intelligence/api/internal/handler"
	"github.com/octobees/partner-intelligence/api/internal/logger"
	middlewarepkg "github.com/octobees/partner-intelligence/api/internal/middleware"
	"github.com/octobees/partner-intelligence/api/internal/repository"
	"github.com/octobees/partner-intelligence/api/internal/router"
	"github.com/octobees/partner-intelligence/api/internal/service"
)

func main() {
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	companiesRepo := repository.NewPGXCompaniesRepository(pool)
	activityRepo := repository.NewPGXActivityLogsRepository(pool)
	teamRepo := repository.NewPGXTeamMembersRepository(pool)

	generator := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	companiesService := service.NewCompaniesService(companiesRepo)
	activityService := service.NewActivityService(activityRepo)
	teamService := service.NewTeamService(teamRepo)
	analyticsService := service.NewAnalyticsService(companiesRepo)
	generationService := service.NewGenerationService(companiesRepo, generator)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Users:        handler.NewUserAdminHandler(userService),
		Companies:    handler.NewCompaniesHandler(companiesService, activityService),
		Analytics:    handler.NewAnalyticsHandler(analyticsService),
		ActivityLogs: handler.NewActivityLogsHandler(activityService),
		TeamMembers:  handler.NewTeamMembersHandler(teamService),
		Generate:     handler.NewGenerateHandler(generationService, activityService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
