package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/octobees/partner-intelligence/api/internal/entity"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Fatalf("expected json_object response format, got %q", req.ResponseFormat.Type)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testCompany() *entity.Company {
	revenue := "$62.3B"
	return &entity.Company{
		Name:                "Siemens AG",
		Industry:            "Manufacturing",
		Revenue:             &revenue,
		BusinessAreas:       []string{"Automation", "Digitalization"},
		DigitalTwinStatus:   entity.StatusImplementing,
		DigitalTwinMaturity: 4,
	}
}

func TestClient_CompetitiveAnalysis(t *testing.T) {
	payload := `{
		"currentTechStack": "Siemens Xcelerator",
		"keyCompetitors": ["HPE", "Lenovo"],
		"dellAdvantages": ["Edge portfolio", "Services"],
		"recommendedStrategy": "Lead with infrastructure",
		"challenges": ["Incumbent lock-in"],
		"solutions": ["Proof of concept"]
	}`
	server := chatServer(t, payload)
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	narrative, err := client.CompetitiveAnalysis(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"**Current Technology Stack**: Siemens Xcelerator",
		"**Key Competitors**: HPE, Lenovo",
		"• Edge portfolio",
		"**Recommended Strategy**: Lead with infrastructure",
		"• **Challenge**: Incumbent lock-in\n  **Solution**: Proof of concept",
	} {
		if !strings.Contains(narrative, fragment) {
			t.Fatalf("expected narrative to contain %q, got:\n%s", fragment, narrative)
		}
	}
}

func TestClient_CompetitiveAnalysis_MissingSolutionFallback(t *testing.T) {
	payload := `{"challenges": ["A", "B"], "solutions": ["Only one"]}`
	server := chatServer(t, payload)
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	narrative, err := client.CompetitiveAnalysis(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(narrative, "**Solution**: Develop mitigation strategy") {
		t.Fatalf("expected fallback solution, got:\n%s", narrative)
	}
}

func TestClient_OpportunityAssessment(t *testing.T) {
	payload := `{
		"opportunityScore": 87,
		"assessmentNotes": "Strong fit",
		"productRecommendations": ["PowerEdge", "APEX"],
		"timelineRecommendation": "Engage within 30 days"
	}`
	server := chatServer(t, payload)
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	assessment, err := client.OpportunityAssessment(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != 87 {
		t.Fatalf("expected score 87, got %d", assessment.Score)
	}
	if !strings.Contains(assessment.Narrative, "**Opportunity Assessment**: Strong fit") {
		t.Fatalf("unexpected narrative:\n%s", assessment.Narrative)
	}
	if !strings.Contains(assessment.Narrative, "**Engagement Timeline**: Engage within 30 days") {
		t.Fatalf("unexpected narrative:\n%s", assessment.Narrative)
	}
}

func TestClient_OpportunityAssessment_DefaultScore(t *testing.T) {
	server := chatServer(t, `{"assessmentNotes": "No score given"}`)
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	assessment, err := client.OpportunityAssessment(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != 50 {
		t.Fatalf("expected default score 50, got %d", assessment.Score)
	}
}

func TestClient_DigitalTwinStrategy_FencedJSON(t *testing.T) {
	payload := "```json\n" + `{
		"currentInitiatives": "Factory simulation pilots",
		"strategicPriorities": ["Scale pilots"],
		"technologyChallenges": ["Data silos"],
		"growthOpportunities": ["Predictive maintenance"],
		"industryCases": ["Production line twins"]
	}` + "\n```"
	server := chatServer(t, payload)
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	narrative, err := client.DigitalTwinStrategy(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(narrative, "**Current Digital Twin Initiatives**: Factory simulation pilots") {
		t.Fatalf("unexpected narrative:\n%s", narrative)
	}
	if !strings.Contains(narrative, "• Production line twins") {
		t.Fatalf("unexpected narrative:\n%s", narrative)
	}
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_exceeded", "message": "slow down"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	if _, err := client.CompetitiveAnalysis(context.Background(), testCompany()); err == nil || !strings.Contains(err.Error(), "rate_limit_exceeded") {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	client := NewClient("", "", "")
	if _, err := client.CompetitiveAnalysis(context.Background(), testCompany()); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain object":  {input: `{"a":1}`, want: `{"a":1}`},
		"fenced":        {input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		"prose wrapped": {input: "Here you go: {\"a\":1} enjoy", want: `{"a":1}`},
		"no json":       {input: "nothing here", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := extractJSON(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
