package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/service"
)

// CompaniesHandler exposes the partner catalogue endpoints.
type CompaniesHandler struct {
	companies *service.CompaniesService
	activity  *service.ActivityService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(companies *service.CompaniesService, activity *service.ActivityService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies, activity: activity}
}

// List handles GET /companies requests. Search and filters compose.
func (h *CompaniesHandler) List(c echo.Context) error {
	query := dto.CompanyQuery{
		Search:            c.QueryParam("search"),
		Industry:          c.QueryParam("industry"),
		DigitalTwinStatus: c.QueryParam("digitalTwinStatus"),
		Country:           c.QueryParam("country"),
		OpportunityScore:  c.QueryParam("opportunityScore"),
	}

	companies, err := h.companies.ListCompanies(c.Request().Context(), query)
	if err != nil {
		return ServiceError(c, err)
	}

	return Success(c, http.StatusOK, "companies retrieved", companies)
}

// Get handles GET /companies/:id requests.
func (h *CompaniesHandler) Get(c echo.Context) error {
	company, err := h.companies.GetCompany(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, "company retrieved", company)
}

// Create handles POST /companies requests and appends a creation entry to
// the audit trail.
func (h *CompaniesHandler) Create(c echo.Context) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request payload")
	}

	company, err := h.companies.CreateCompany(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err)
	}

	h.audit(c.Request().Context(), &company.ID, "company_created",
		fmt.Sprintf("Added new company: %s", company.Name))

	return Success(c, http.StatusCreated, "company created", company)
}

// Update handles PATCH /companies/:id requests. The audit entry names the
// fields present in the payload.
func (h *CompaniesHandler) Update(c echo.Context) error {
	var req dto.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request payload")
	}

	company, fields, err := h.companies.UpdateCompany(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return ServiceError(c, err)
	}

	description := fmt.Sprintf("Updated company details for %s", company.Name)
	if len(fields) > 0 {
		description = fmt.Sprintf("Updated %s for %s", strings.Join(fields, ", "), company.Name)
	}
	h.audit(c.Request().Context(), &company.ID, "company_updated", description)

	return Success(c, http.StatusOK, "company updated", company)
}

// Delete handles DELETE /companies/:id requests. A missing company yields
// 404 rather than an error.
func (h *CompaniesHandler) Delete(c echo.Context) error {
	deleted, err := h.companies.DeleteCompany(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ServiceError(c, err)
	}
	if !deleted {
		return Error(c, http.StatusNotFound, "company not found")
	}
	return Success(c, http.StatusOK, "company deleted", map[string]bool{"success": true})
}

// A failed audit append never rolls back the primary write.
func (h *CompaniesHandler) audit(ctx context.Context, companyID *uuid.UUID, action, description string) {
	if _, err := h.activity.Record(ctx, companyID, service.AuditSystemID, service.AuditSystemName, action, description); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to append activity log")
	}
}
