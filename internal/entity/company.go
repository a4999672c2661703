package entity

import (
	"time"

	"github.com/google/uuid"
)

// Digital twin adoption stages tracked per partner company.
const (
	StatusNotStarted   = "not_started"
	StatusResearching  = "researching"
	StatusImplementing = "implementing"
	StatusCompleted    = "completed"
)

// DigitalTwinStatuses enumerates the valid adoption stages.
var DigitalTwinStatuses = []string{
	StatusNotStarted,
	StatusResearching,
	StatusImplementing,
	StatusCompleted,
}

// Industries enumerates the fixed industry classification.
var Industries = []string{
	"Manufacturing",
	"Automotive",
	"Healthcare",
	"Energy",
	"Aerospace",
	"Chemicals",
	"Technology",
	"Financial Services",
	"Retail",
	"Other",
}

// Company represents a partner company tracked in the pipeline.
// Revenue and EstimatedDealValue are display strings as entered by sales
// ("€62.3B", "$850K"); the money package parses them where aggregation needs
// numeric values.
type Company struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Industry            string     `json:"industry"`
	Country             string     `json:"country"`
	Employees           *int       `json:"employees,omitempty"`
	Revenue             *string    `json:"revenue,omitempty"`
	Headquarters        *string    `json:"headquarters,omitempty"`
	CEO                 *string    `json:"ceo,omitempty"`
	Founded             *int       `json:"founded,omitempty"`
	Website             *string    `json:"website,omitempty"`
	BusinessAreas       []string   `json:"businessAreas"`
	DigitalTwinStatus   string     `json:"digitalTwinStatus"`
	DigitalTwinMaturity int        `json:"digitalTwinMaturity"`
	OpportunityScore    int        `json:"opportunityScore"`
	EstimatedDealValue  *string    `json:"estimatedDealValue,omitempty"`
	LastUpdated         time.Time  `json:"lastUpdated"`
	NextFollowUp        *time.Time `json:"nextFollowUp,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CompetitiveAnalysis *string    `json:"competitiveAnalysis,omitempty"`
	DellOpportunity     *string    `json:"dellOpportunity,omitempty"`
	DigitalTwinStrategy *string    `json:"digitalTwinStrategy,omitempty"`
}

// IsValidDigitalTwinStatus reports whether s is one of the four stages.
func IsValidDigitalTwinStatus(s string) bool {
	for _, status := range DigitalTwinStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidIndustry reports whether s is one of the fixed industry values.
func IsValidIndustry(s string) bool {
	for _, industry := range Industries {
		if s == industry {
			return true
		}
	}
	return false
}
