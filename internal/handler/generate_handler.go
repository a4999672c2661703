package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/octobees/partner-intelligence/api/internal/service"
)

// GenerateHandler exposes the AI narrative generation endpoints. Each
// operation stores its result on the company and appends an AI-attributed
// audit entry.
type GenerateHandler struct {
	generation *service.GenerationService
	activity   *service.ActivityService
}

// NewGenerateHandler creates a new handler instance.
func NewGenerateHandler(generation *service.GenerationService, activity *service.ActivityService) *GenerateHandler {
	return &GenerateHandler{generation: generation, activity: activity}
}

// CompetitiveAnalysis handles POST /companies/:id/generate-competitive-analysis.
func (h *GenerateHandler) CompetitiveAnalysis(c echo.Context) error {
	company, err := h.generation.GenerateCompetitiveAnalysis(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ServiceError(c, err)
	}

	h.audit(c.Request().Context(), &company.ID, "competitive_analysis_generated",
		fmt.Sprintf("Generated competitive analysis for %s", company.Name))

	return Success(c, http.StatusOK, "competitive analysis generated", company)
}

// OpportunityAssessment handles POST /companies/:id/generate-opportunity-assessment.
func (h *GenerateHandler) OpportunityAssessment(c echo.Context) error {
	company, score, err := h.generation.GenerateOpportunityAssessment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ServiceError(c, err)
	}

	h.audit(c.Request().Context(), &company.ID, "opportunity_assessment_generated",
		fmt.Sprintf("Generated opportunity assessment for %s (Score: %d)", company.Name, score))

	return Success(c, http.StatusOK, "opportunity assessment generated", company)
}

// DigitalTwinStrategy handles POST /companies/:id/generate-digital-twin-strategy.
func (h *GenerateHandler) DigitalTwinStrategy(c echo.Context) error {
	company, err := h.generation.GenerateDigitalTwinStrategy(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ServiceError(c, err)
	}

	h.audit(c.Request().Context(), &company.ID, "digital_twin_strategy_generated",
		fmt.Sprintf("Generated digital twin strategy analysis for %s", company.Name))

	return Success(c, http.StatusOK, "digital twin strategy generated", company)
}

func (h *GenerateHandler) audit(ctx context.Context, companyID *uuid.UUID, action, description string) {
	if _, err := h.activity.Record(ctx, companyID, service.AuditAIID, service.AuditAIName, action, description); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to append activity log")
	}
}
