package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/pkg/anthropic"
)

// fakeLLM returns a canned reply and captures the request.
type fakeLLM struct {
	req   anthropic.MessageRequest
	reply string
	err   error
}

func (f *fakeLLM) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

func TestLLMStrategy_Discover(t *testing.T) {
	fake := &fakeLLM{reply: `Here are some great picks:

1. Morcilla - Spanish small plates in Lawrenceville. Spanish, Lawrenceville, Mid-range.
2. Gaucho Parrilla Argentina - Wood-fired Argentine steakhouse. Argentine, Strip District, Mid-range.`}

	got, err := NewLLMStrategy(fake).Discover(context.Background(), "Pittsburgh", "PA")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Morcilla", got[0].Name)
	assert.Equal(t, "Lawrenceville", got[0].Neighborhood)
	assert.Equal(t, "AI Recommendations", got[0].Source)
	assert.Equal(t, model.ConfidenceHigh, got[0].Confidence)

	// The request carries the city and the configured model.
	assert.Equal(t, defaultModel, fake.req.Model)
	assert.Equal(t, int64(defaultMaxTokens), fake.req.MaxTokens)
	require.Len(t, fake.req.Messages, 1)
	assert.Contains(t, fake.req.Messages[0].Content, "Pittsburgh, PA")
}

func TestLLMStrategy_ModelOverride(t *testing.T) {
	fake := &fakeLLM{reply: "1. Morcilla - Spanish small plates. Spanish, Lawrenceville, Mid-range."}

	_, err := NewLLMStrategy(fake, WithModel("claude-3-5-haiku-20241022")).
		Discover(context.Background(), "Pittsburgh", "PA")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-20241022", fake.req.Model)
}

func TestLLMStrategy_FreeformFallback(t *testing.T) {
	fake := &fakeLLM{reply: `- Morcilla
- Gaucho Parrilla Argentina`}

	got, err := NewLLMStrategy(fake).Discover(context.Background(), "Pittsburgh", "PA")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ConfidenceMedium, got[0].Confidence)
}

func TestLLMStrategy_RequestError(t *testing.T) {
	fake := &fakeLLM{err: eris.New("overloaded")}

	_, err := NewLLMStrategy(fake).Discover(context.Background(), "Pittsburgh", "PA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request")
}

func TestLLMStrategy_NoClientNoFile(t *testing.T) {
	got, err := NewLLMStrategy(nil).Discover(context.Background(), "Pittsburgh", "PA")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLLMStrategy_ResultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	data := `[
  {"name": "Morcilla", "description": "Spanish small plates", "cuisine_type": "Spanish", "location": "Lawrenceville", "price_range": "Mid-range"},
  {"name": "", "description": "nameless entries are skipped"}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := NewLLMStrategy(nil, WithResultsFile(path)).
		Discover(context.Background(), "Pittsburgh", "PA")
	require.NoError(t, err)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "Morcilla", c.Name)
	assert.Equal(t, "Spanish", c.CuisineType)
	assert.Equal(t, "Lawrenceville", c.Neighborhood)
	assert.Equal(t, "Mid-range", c.PriceTier)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
	assert.Equal(t, "AI Recommendations", c.Source)
}

func TestLLMStrategy_ResultsFileMissing(t *testing.T) {
	_, err := NewLLMStrategy(nil, WithResultsFile("/nonexistent/results.json")).
		Discover(context.Background(), "Pittsburgh", "PA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read results file")
}

func TestLLMStrategy_ResultsFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewLLMStrategy(nil, WithResultsFile(path)).
		Discover(context.Background(), "Pittsburgh", "PA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse results file")
}
