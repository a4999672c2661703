// Package ai implements the narrative generator against the OpenAI chat
// completions REST API using net/http; no SDK required.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/service"
)

// Compile-time check that Client satisfies the generator port.
var _ service.NarrativeGenerator = (*Client)(nil)

const (
	// DefaultBaseURL targets the public OpenAI API; tests point it at a
	// local server.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the chat model used for all three narratives.
	DefaultModel = "gpt-5"
)

// Client calls the OpenAI chat completions endpoint and renders the
// structured responses into the Markdown narratives stored on companies.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs the generator. Empty model or baseURL fall back to
// the defaults. An empty apiKey makes calls fail with a descriptive error
// instead of panicking.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe captures the first { ... } block in case the model wraps its
// JSON in prose despite the response format.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

type competitivePayload struct {
	CurrentTechStack    string   `json:"currentTechStack"`
	KeyCompetitors      []string `json:"keyCompetitors"`
	DellAdvantages      []string `json:"dellAdvantages"`
	RecommendedStrategy string   `json:"recommendedStrategy"`
	Challenges          []string `json:"challenges"`
	Solutions           []string `json:"solutions"`
}

type opportunityPayload struct {
	OpportunityScore       *int     `json:"opportunityScore"`
	AssessmentNotes        string   `json:"assessmentNotes"`
	ProductRecommendations []string `json:"productRecommendations"`
	TimelineRecommendation string   `json:"timelineRecommendation"`
}

type strategyPayload struct {
	CurrentInitiatives   string   `json:"currentInitiatives"`
	StrategicPriorities  []string `json:"strategicPriorities"`
	TechnologyChallenges []string `json:"technologyChallenges"`
	GrowthOpportunities  []string `json:"growthOpportunities"`
	IndustryCases        []string `json:"industryCases"`
}

// CompetitiveAnalysis generates the competitive landscape narrative.
func (c *Client) CompetitiveAnalysis(ctx context.Context, company *entity.Company) (string, error) {
	prompt := fmt.Sprintf(`Analyze the competitive landscape and Dell's positioning opportunity for %s, a %s company with digital twin status: %s.

Please provide a comprehensive competitive analysis including:
1. Current digital twin technology stack they likely use
2. Key competitors in their digital twin space
3. Dell's specific competitive advantages and positioning opportunities
4. Recommended approach strategy
5. Potential challenges and how to overcome them

Respond with a detailed analysis in JSON format with the following structure:
{
  "currentTechStack": "description of likely current technology stack",
  "keyCompetitors": ["list of main competitors"],
  "dellAdvantages": ["list of Dell's competitive advantages"],
  "recommendedStrategy": "detailed strategy recommendation",
  "challenges": ["list of potential challenges"],
  "solutions": ["corresponding solutions to challenges"]
}`, company.Name, company.Industry, company.DigitalTwinStatus)

	raw, err := c.complete(ctx,
		"You are a competitive intelligence analyst specializing in digital twin technology and enterprise infrastructure solutions. Provide detailed, actionable insights for Dell's sales strategy.",
		prompt)
	if err != nil {
		return "", err
	}

	var result competitivePayload
	if err := decodePayload(raw, &result); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Current Technology Stack**: %s\n\n", result.CurrentTechStack)
	fmt.Fprintf(&b, "**Key Competitors**: %s\n\n", strings.Join(result.KeyCompetitors, ", "))
	fmt.Fprintf(&b, "**Dell's Competitive Advantages**:\n%s\n\n", bulletList(result.DellAdvantages))
	fmt.Fprintf(&b, "**Recommended Strategy**: %s\n\n", result.RecommendedStrategy)
	b.WriteString("**Potential Challenges & Solutions**:\n")
	for i, challenge := range result.Challenges {
		solution := "Develop mitigation strategy"
		if i < len(result.Solutions) {
			solution = result.Solutions[i]
		}
		fmt.Fprintf(&b, "• **Challenge**: %s\n  **Solution**: %s\n", challenge, solution)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// OpportunityAssessment generates the scored opportunity narrative. A
// missing score in the model response falls back to 50.
func (c *Client) OpportunityAssessment(ctx context.Context, company *entity.Company) (service.OpportunityAssessment, error) {
	revenue := "unknown"
	if company.Revenue != nil {
		revenue = *company.Revenue
	}

	prompt := fmt.Sprintf(`Assess the Dell sales opportunity for %s, a %s company with revenue of %s and current digital twin maturity of %d%%.

Please provide:
1. An opportunity score from 1-100 based on their potential value as a Dell customer
2. Detailed assessment notes explaining the scoring rationale
3. Specific product/solution recommendations
4. Timeline recommendations for engagement

Respond in JSON format:
{
  "opportunityScore": number,
  "assessmentNotes": "detailed explanation of scoring and recommendations",
  "productRecommendations": ["list of Dell products/solutions"],
  "timelineRecommendation": "suggested engagement timeline"
}`, company.Name, company.Industry, revenue, company.DigitalTwinMaturity)

	raw, err := c.complete(ctx,
		"You are a sales opportunity assessment specialist for Dell Technologies, focused on digital twin and infrastructure solutions.",
		prompt)
	if err != nil {
		return service.OpportunityAssessment{}, err
	}

	var result opportunityPayload
	if err := decodePayload(raw, &result); err != nil {
		return service.OpportunityAssessment{}, err
	}

	score := 50
	if result.OpportunityScore != nil {
		score = *result.OpportunityScore
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Opportunity Assessment**: %s\n\n", result.AssessmentNotes)
	fmt.Fprintf(&b, "**Recommended Dell Solutions**:\n%s\n\n", bulletList(result.ProductRecommendations))
	fmt.Fprintf(&b, "**Engagement Timeline**: %s", result.TimelineRecommendation)

	return service.OpportunityAssessment{
		Score:     score,
		Narrative: b.String(),
	}, nil
}

// DigitalTwinStrategy generates the digital twin strategy narrative.
func (c *Client) DigitalTwinStrategy(ctx context.Context, company *entity.Company) (string, error) {
	prompt := fmt.Sprintf(`Analyze the digital twin strategy for %s, a %s company with business areas: %s.

Provide insights on:
1. Current digital twin initiatives they likely have
2. Strategic priorities for digital twin adoption
3. Technology challenges they face
4. Growth opportunities through digital twins
5. Industry-specific digital twin use cases

Respond with a comprehensive strategy analysis in JSON format:
{
  "currentInitiatives": "description of likely current digital twin efforts",
  "strategicPriorities": ["list of strategic priorities"],
  "technologyChallenges": ["list of technical challenges"],
  "growthOpportunities": ["list of growth opportunities"],
  "industryCases": ["industry-specific use cases"]
}`, company.Name, company.Industry, strings.Join(company.BusinessAreas, ", "))

	raw, err := c.complete(ctx,
		"You are a digital twin strategy consultant with deep expertise in enterprise digital transformation across various industries.",
		prompt)
	if err != nil {
		return "", err
	}

	var result strategyPayload
	if err := decodePayload(raw, &result); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Current Digital Twin Initiatives**: %s\n\n", result.CurrentInitiatives)
	fmt.Fprintf(&b, "**Strategic Priorities**:\n%s\n\n", bulletList(result.StrategicPriorities))
	fmt.Fprintf(&b, "**Technology Challenges**:\n%s\n\n", bulletList(result.TechnologyChallenges))
	fmt.Fprintf(&b, "**Growth Opportunities**:\n%s\n\n", bulletList(result.GrowthOpportunities))
	fmt.Fprintf(&b, "**Industry-Specific Use Cases**:\n%s", bulletList(result.IndustryCases))
	return b.String(), nil
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("chat request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("openai error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("openai HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(rawBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func decodePayload(raw string, dest any) error {
	clean := extractJSON(raw)
	if clean == "" {
		return fmt.Errorf("no JSON object found in model response")
	}
	if err := json.Unmarshal([]byte(clean), dest); err != nil {
		return fmt.Errorf("decode model payload: %w", err)
	}
	return nil
}

// extractJSON pulls the first well-formed JSON object out of free text,
// stripping markdown code fences first.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
