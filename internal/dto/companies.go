package dto

import "time"

// CompanyQuery carries the raw company listing parameters. Sentinel values
// ("All Industries", "All Statuses", ...) and opportunity bucket labels are
// interpreted by the service layer, not here.
type CompanyQuery struct {
	Search            string
	Industry          string
	DigitalTwinStatus string
	Country           string
	OpportunityScore  string
}

// CreateCompanyRequest is the payload for creating a company. Name, industry
// and country are required; everything else is optional with defaults applied
// by the service.
type CreateCompanyRequest struct {
	Name                string     `json:"name"`
	Industry            string     `json:"industry"`
	Country             string     `json:"country"`
	Employees           *int       `json:"employees,omitempty"`
	Revenue             *string    `json:"revenue,omitempty"`
	Headquarters        *string    `json:"headquarters,omitempty"`
	CEO                 *string    `json:"ceo,omitempty"`
	Founded             *int       `json:"founded,omitempty"`
	Website             *string    `json:"website,omitempty"`
	BusinessAreas       []string   `json:"businessAreas,omitempty"`
	DigitalTwinStatus   string     `json:"digitalTwinStatus,omitempty"`
	DigitalTwinMaturity *int       `json:"digitalTwinMaturity,omitempty"`
	OpportunityScore    *int       `json:"opportunityScore,omitempty"`
	EstimatedDealValue  *string    `json:"estimatedDealValue,omitempty"`
	NextFollowUp        *time.Time `json:"nextFollowUp,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CompetitiveAnalysis *string    `json:"competitiveAnalysis,omitempty"`
	DellOpportunity     *string    `json:"dellOpportunity,omitempty"`
	DigitalTwinStrategy *string    `json:"digitalTwinStrategy,omitempty"`
}

// UpdateCompanyRequest is a partial update: only non-nil fields are applied.
// The audit trail records which fields were present, whether or not their
// values actually changed.
type UpdateCompanyRequest struct {
	Name                *string    `json:"name,omitempty"`
	Industry            *string    `json:"industry,omitempty"`
	Country             *string    `json:"country,omitempty"`
	Employees           *int       `json:"employees,omitempty"`
	Revenue             *string    `json:"revenue,omitempty"`
	Headquarters        *string    `json:"headquarters,omitempty"`
	CEO                 *string    `json:"ceo,omitempty"`
	Founded             *int       `json:"founded,omitempty"`
	Website             *string    `json:"website,omitempty"`
	BusinessAreas       *[]string  `json:"businessAreas,omitempty"`
	DigitalTwinStatus   *string    `json:"digitalTwinStatus,omitempty"`
	DigitalTwinMaturity *int       `json:"digitalTwinMaturity,omitempty"`
	OpportunityScore    *int       `json:"opportunityScore,omitempty"`
	EstimatedDealValue  *string    `json:"estimatedDealValue,omitempty"`
	NextFollowUp        *time.Time `json:"nextFollowUp,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CompetitiveAnalysis *string    `json:"competitiveAnalysis,omitempty"`
	DellOpportunity     *string    `json:"dellOpportunity,omitempty"`
	DigitalTwinStrategy *string    `json:"digitalTwinStrategy,omitempty"`
}
