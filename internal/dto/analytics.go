package dto

// AnalyticsOverview is the aggregator output, recomputed from the full
// company set on every request.
type AnalyticsOverview struct {
	TotalPartners        int            `json:"totalPartners"`
	ActiveProjects       int            `json:"activeProjects"`
	HighOpportunityCount int            `json:"highOpportunityCount"`
	PipelineValue        string         `json:"pipelineValue"`
	StatusDistribution   map[string]int `json:"statusDistribution"`
	IndustryDistribution map[string]int `json:"industryDistribution"`
}
