package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/parser"
	"github.com/cardinal-labs/dinescout/pkg/anthropic"
)

const (
	llmSourceName = "AI Recommendations"

	defaultModel     = "claude-3-5-sonnet-20241022"
	defaultMaxTokens = 1500
)

const discoveryPromptFmt = `What are the best restaurants in %s, %s? Please provide a list of 15-20 highly-rated restaurants with the following details for each:

- Restaurant name
- Brief description (one sentence)
- Cuisine type
- Neighborhood or area
- Price range (Fine dining, Mid-range, or Budget)

Format each entry as a numbered line like:
1. Restaurant Name - Description here. Cuisine Type, Neighborhood, Price Range.

Focus on well-established, currently operating restaurants that locals recommend.`

// LLMStrategy asks a language model for restaurant recommendations and
// parses the numbered-list reply into candidates.
type LLMStrategy struct {
	client    anthropic.Client
	model     string
	maxTokens int64

	// resultsFile, when set, is read instead of calling the API. Used
	// when no API key is configured.
	resultsFile string
}

// LLMOption configures an LLMStrategy.
type LLMOption func(*LLMStrategy)

// WithModel overrides the model used for discovery.
func WithModel(m string) LLMOption {
	return func(s *LLMStrategy) {
		if m != "" {
			s.model = m
		}
	}
}

// WithResultsFile makes the strategy load previously saved results from
// a JSON file instead of calling the API.
func WithResultsFile(path string) LLMOption {
	return func(s *LLMStrategy) {
		s.resultsFile = path
	}
}

// NewLLMStrategy creates the LLM-backed strategy. The client may be nil
// when a results file is configured.
func NewLLMStrategy(client anthropic.Client, opts ...LLMOption) *LLMStrategy {
	s := &LLMStrategy{
		client:    client,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LLMStrategy) Name() string { return "llm" }

// Discover requests recommendations for the city and parses them. When a
// results file is configured it is loaded instead of calling the API.
func (s *LLMStrategy) Discover(ctx context.Context, city, state string) ([]model.Candidate, error) {
	if s.resultsFile != "" {
		return s.loadResultsFile()
	}
	if s.client == nil {
		zap.L().Warn("llm strategy has no client and no results file, skipping")
		return nil, nil
	}

	prompt := fmt.Sprintf(discoveryPromptFmt, city, state)
	resp, err := s.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "discovery: llm request")
	}
	resp.Usage.LogUsage(s.model, "discover")

	text := resp.Text()
	candidates := parser.ParseNumberedList(text, llmSourceName)
	if len(candidates) == 0 {
		// Some replies skip numbering entirely; fall back to the
		// freeform parser before giving up.
		candidates = parser.ParseFreeform(text, llmSourceName)
	}
	return candidates, nil
}

// savedResult is the saved-recommendations JSON shape, kept compatible
// with files exported before records carried enrichment data.
type savedResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine_type"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
}

func (s *LLMStrategy) loadResultsFile() ([]model.Candidate, error) {
	data, err := os.ReadFile(s.resultsFile)
	if err != nil {
		return nil, eris.Wrapf(err, "discovery: read results file %s", s.resultsFile)
	}

	var saved []savedResult
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, eris.Wrap(err, "discovery: parse results file")
	}

	candidates := make([]model.Candidate, 0, len(saved))
	for _, r := range saved {
		if r.Name == "" {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Name:         r.Name,
			Description:  r.Description,
			CuisineType:  r.Cuisine,
			Neighborhood: r.Location,
			PriceTier:    r.PriceRange,
			Confidence:   model.ConfidenceHigh,
			Source:       llmSourceName,
		})
	}
	return candidates, nil
}
