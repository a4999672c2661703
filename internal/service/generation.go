package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// OpportunityAssessment is the structured result of an opportunity analysis.
type OpportunityAssessment struct {
	Score     int
	Narrative string
}

// NarrativeGenerator produces AI narratives for a company. Implementations
// live outside the service layer; the zero-dependency port keeps generation
// testable.
type NarrativeGenerator interface {
	CompetitiveAnalysis(ctx context.Context, company *entity.Company) (string, error)
	OpportunityAssessment(ctx context.Context, company *entity.Company) (OpportunityAssessment, error)
	DigitalTwinStrategy(ctx context.Context, company *entity.Company) (string, error)
}

// GenerationService orchestrates narrative generation: it loads the company,
// calls the generator and persists the result onto the record.
type GenerationService struct {
	companies repository.CompaniesRepository
	generator NarrativeGenerator
}

// NewGenerationService creates a new instance of GenerationService.
func NewGenerationService(companies repository.CompaniesRepository, generator NarrativeGenerator) *GenerationService {
	return &GenerationService{companies: companies, generator: generator}
}

// GenerateCompetitiveAnalysis produces and stores a competitive analysis.
func (s *GenerationService) GenerateCompetitiveAnalysis(ctx context.Context, id string) (*entity.Company, error) {
	company, companyID, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	narrative, err := s.generator.CompetitiveAnalysis(ctx, company)
	if err != nil {
		return nil, GenerationError{Op: "generate competitive analysis", Cause: err}
	}

	return s.companies.Update(ctx, companyID, repository.CompanyPatch{
		CompetitiveAnalysis: &narrative,
	})
}

// GenerateOpportunityAssessment produces and stores an opportunity
// assessment, updating the opportunity score alongside the narrative. The
// generated score is clamped to the 1-100 scale.
func (s *GenerationService) GenerateOpportunityAssessment(ctx context.Context, id string) (*entity.Company, int, error) {
	company, companyID, err := s.load(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	assessment, err := s.generator.OpportunityAssessment(ctx, company)
	if err != nil {
		return nil, 0, GenerationError{Op: "generate opportunity assessment", Cause: err}
	}

	score := clampScore(assessment.Score)
	updated, err := s.companies.Update(ctx, companyID, repository.CompanyPatch{
		DellOpportunity:  &assessment.Narrative,
		OpportunityScore: &score,
	})
	if err != nil {
		return nil, 0, err
	}
	return updated, score, nil
}

// GenerateDigitalTwinStrategy produces and stores a digital twin strategy.
func (s *GenerationService) GenerateDigitalTwinStrategy(ctx context.Context, id string) (*entity.Company, error) {
	company, companyID, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	narrative, err := s.generator.DigitalTwinStrategy(ctx, company)
	if err != nil {
		return nil, GenerationError{Op: "generate digital twin strategy", Cause: err}
	}

	return s.companies.Update(ctx, companyID, repository.CompanyPatch{
		DigitalTwinStrategy: &narrative,
	})
}

func (s *GenerationService) load(ctx context.Context, id string) (*entity.Company, uuid.UUID, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, uuid.Nil, ValidationError{Message: "invalid company id"}
	}
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return company, companyID, nil
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}
