package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// CompaniesService exposes read/write operations for the partner catalogue.
type CompaniesService struct {
	repo repository.CompaniesRepository
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(repo repository.CompaniesRepository) *CompaniesService {
	return &CompaniesService{repo: repo}
}

// ListCompanies returns companies matching the query. Search and the
// dropdown filters compose: every provided predicate must hold.
func (s *CompaniesService) ListCompanies(ctx context.Context, query dto.CompanyQuery) ([]entity.Company, error) {
	filter := repository.CompanyFilter{
		Search:            strings.TrimSpace(query.Search),
		Industry:          normalizeFilterValue(query.Industry),
		DigitalTwinStatus: normalizeFilterValue(query.DigitalTwinStatus),
		Country:           normalizeFilterValue(query.Country),
	}
	filter.MinScore, filter.MaxScore = scoreBucketBounds(query.OpportunityScore)

	companies, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []entity.Company{}
	}
	return companies, nil
}

// GetCompany fetches a single company by its id.
func (s *CompaniesService) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid company id"}
	}
	return s.repo.GetByID(ctx, companyID)
}

// CreateCompany validates the payload, fills defaults and persists the record.
func (s *CompaniesService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*entity.Company, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Industry = strings.TrimSpace(req.Industry)
	req.Country = strings.TrimSpace(req.Country)

	if req.Name == "" || req.Industry == "" || req.Country == "" {
		return nil, ValidationError{Message: "name, industry and country are required"}
	}
	if !entity.IsValidIndustry(req.Industry) {
		return nil, ValidationError{Message: fmt.Sprintf("unknown industry %q", req.Industry)}
	}

	status := req.DigitalTwinStatus
	if status == "" {
		status = entity.StatusNotStarted
	}
	if !entity.IsValidDigitalTwinStatus(status) {
		return nil, ValidationError{Message: fmt.Sprintf("unknown digital twin status %q", status)}
	}

	maturity := 0
	if req.DigitalTwinMaturity != nil {
		maturity = *req.DigitalTwinMaturity
	}
	score := 0
	if req.OpportunityScore != nil {
		score = *req.OpportunityScore
	}

	areas := req.BusinessAreas
	if areas == nil {
		areas = []string{}
	}

	company := &entity.Company{
		ID:                  uuid.New(),
		Name:                req.Name,
		Industry:            req.Industry,
		Country:             req.Country,
		Employees:           req.Employees,
		Revenue:             req.Revenue,
		Headquarters:        req.Headquarters,
		CEO:                 req.CEO,
		Founded:             req.Founded,
		Website:             req.Website,
		BusinessAreas:       areas,
		DigitalTwinStatus:   status,
		DigitalTwinMaturity: maturity,
		OpportunityScore:    score,
		EstimatedDealValue:  req.EstimatedDealValue,
		LastUpdated:         time.Now().UTC(),
		NextFollowUp:        req.NextFollowUp,
		Notes:               req.Notes,
		CompetitiveAnalysis: req.CompetitiveAnalysis,
		DellOpportunity:     req.DellOpportunity,
		DigitalTwinStrategy: req.DigitalTwinStrategy,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany applies a partial update and reports which fields were
// present in the request, in payload order, for the audit trail.
func (s *CompaniesService) UpdateCompany(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*entity.Company, []string, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, ValidationError{Message: "invalid company id"}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, nil, ValidationError{Message: "name cannot be empty"}
	}
	if req.Industry != nil && !entity.IsValidIndustry(*req.Industry) {
		return nil, nil, ValidationError{Message: fmt.Sprintf("unknown industry %q", *req.Industry)}
	}
	if req.DigitalTwinStatus != nil && !entity.IsValidDigitalTwinStatus(*req.DigitalTwinStatus) {
		return nil, nil, ValidationError{Message: fmt.Sprintf("unknown digital twin status %q", *req.DigitalTwinStatus)}
	}

	patch := repository.CompanyPatch{
		Name:                req.Name,
		Industry:            req.Industry,
		Country:             req.Country,
		Employees:           req.Employees,
		Revenue:             req.Revenue,
		Headquarters:        req.Headquarters,
		CEO:                 req.CEO,
		Founded:             req.Founded,
		Website:             req.Website,
		BusinessAreas:       req.BusinessAreas,
		DigitalTwinStatus:   req.DigitalTwinStatus,
		DigitalTwinMaturity: req.DigitalTwinMaturity,
		OpportunityScore:    req.OpportunityScore,
		EstimatedDealValue:  req.EstimatedDealValue,
		NextFollowUp:        req.NextFollowUp,
		Notes:               req.Notes,
		CompetitiveAnalysis: req.CompetitiveAnalysis,
		DellOpportunity:     req.DellOpportunity,
		DigitalTwinStrategy: req.DigitalTwinStrategy,
	}

	company, err := s.repo.Update(ctx, companyID, patch)
	if err != nil {
		return nil, nil, err
	}
	return company, changedFields(req), nil
}

// DeleteCompany removes a company. The boolean reports whether it existed.
func (s *CompaniesService) DeleteCompany(ctx context.Context, id string) (bool, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return false, ValidationError{Message: "invalid company id"}
	}
	return s.repo.Delete(ctx, companyID)
}

// Dropdown sentinels such as "All Industries" or a bare "all" mean no
// constraint. "all" must stand alone as the first word: real values that
// merely start with those letters ("Allemagne") are kept as filters.
func normalizeFilterValue(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	fields := strings.Fields(strings.ToLower(value))
	if fields[0] == "all" {
		return nil
	}
	return &value
}

// scoreBucketBounds maps a bucket label to score bounds by its leading
// keyword, so "High (8-10)" and "High Priority" behave identically.
func scoreBucketBounds(label string) (minScore, maxScore *int) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) == 0 {
		return nil, nil
	}
	switch {
	case strings.HasPrefix(fields[0], "all"):
		return nil, nil
	case fields[0] == "high":
		lo := 80
		return &lo, nil
	case fields[0] == "medium":
		lo, hi := 50, 79
		return &lo, &hi
	case fields[0] == "low":
		hi := 49
		return nil, &hi
	default:
		return nil, nil
	}
}

func changedFields(req dto.UpdateCompanyRequest) []string {
	fields := make([]string, 0)
	add := func(present bool, name string) {
		if present {
			fields = append(fields, name)
		}
	}
	add(req.Name != nil, "name")
	add(req.Industry != nil, "industry")
	add(req.Country != nil, "country")
	add(req.Employees != nil, "employees")
	add(req.Revenue != nil, "revenue")
	add(req.Headquarters != nil, "headquarters")
	add(req.CEO != nil, "ceo")
	add(req.Founded != nil, "founded")
	add(req.Website != nil, "website")
	add(req.BusinessAreas != nil, "businessAreas")
	add(req.DigitalTwinStatus != nil, "digitalTwinStatus")
	add(req.DigitalTwinMaturity != nil, "digitalTwinMaturity")
	add(req.OpportunityScore != nil, "opportunityScore")
	add(req.EstimatedDealValue != nil, "estimatedDealValue")
	add(req.NextFollowUp != nil, "nextFollowUp")
	add(req.Notes != nil, "notes")
	add(req.CompetitiveAnalysis != nil, "competitiveAnalysis")
	add(req.DellOpportunity != nil, "dellOpportunity")
	add(req.DigitalTwinStrategy != nil, "digitalTwinStrategy")
	return fields
}
