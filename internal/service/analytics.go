package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/money"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// AnalyticsService aggregates the partner catalogue into dashboard numbers.
type AnalyticsService struct {
	companies repository.CompaniesRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(companies repository.CompaniesRepository) *AnalyticsService {
	return &AnalyticsService{companies: companies}
}

// Overview computes the dashboard aggregation over all companies.
// Deal values that do not parse are skipped rather than failing the whole
// overview.
func (s *AnalyticsService) Overview(ctx context.Context) (*dto.AnalyticsOverview, error) {
	companies, err := s.companies.List(ctx, repository.CompanyFilter{})
	if err != nil {
		return nil, err
	}

	overview := &dto.AnalyticsOverview{
		TotalPartners:        len(companies),
		StatusDistribution:   map[string]int{},
		IndustryDistribution: map[string]int{},
	}

	pipeline := decimal.Zero
	for _, company := range companies {
		overview.StatusDistribution[company.DigitalTwinStatus]++
		overview.IndustryDistribution[company.Industry]++

		if company.DigitalTwinStatus == entity.StatusImplementing || company.DigitalTwinStatus == entity.StatusCompleted {
			overview.ActiveProjects++
		}
		if company.OpportunityScore >= 80 {
			overview.HighOpportunityCount++
		}
		if company.EstimatedDealValue != nil {
			if amount, err := money.Parse(*company.EstimatedDealValue); err == nil {
				pipeline = pipeline.Add(amount.Value)
			}
		}
	}

	overview.PipelineValue = money.FormatCompact(pipeline)
	return overview, nil
}
