package anthropic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwise/backend/internal/domain"
)

func sampleResults() []domain.ProductResult {
	return []domain.ProductResult{
		{
			Store: "Walmart", Name: "onn. Headphones", Price: 24.88, EthicalScore: 3,
			Carbon: domain.CarbonEstimate{KgCO2e: 40.5, Label: "Moderate impact"},
		},
		{
			Store: "Amazon", Name: "Sony WH-1000XM4", Price: 278, EthicalScore: 2,
			Carbon: domain.CarbonEstimate{KgCO2e: 45.0, Label: "Moderate impact"},
		},
	}
}

func TestSummarize_EmptyResults(t *testing.T) {
	s := NewSummarizer("", "", 0)

	summary, err := s.Summarize(context.Background(), "headphones", nil)

	require.NoError(t, err)
	assert.Equal(t, noListingsSummary, summary)
}

func TestSummarize_FallbackWithoutAPIKey(t *testing.T) {
	s := NewSummarizer("", "", 0)

	summary, err := s.Summarize(context.Background(), "headphones", sampleResults())

	require.NoError(t, err)
	assert.Contains(t, summary, "Top findings for 'headphones'")
	assert.Contains(t, summary, "Walmart onn. Headphones at $24.88")
	assert.Contains(t, summary, "ethical score 3")
	assert.Contains(t, summary, "Moderate impact (~40.5 kg CO2e)")
	assert.Contains(t, summary, "Pick the best balance of price and sustainability")
}

func TestSummarize_MissingLabelRendersUnknown(t *testing.T) {
	s := NewSummarizer("", "", 0)
	results := []domain.ProductResult{
		{Store: "Newegg", Name: "Mystery Gadget", Price: 10, EthicalScore: 2},
	}

	summary, err := s.Summarize(context.Background(), "gadget", results)

	require.NoError(t, err)
	assert.Contains(t, summary, "Unknown impact")
}

func TestNewSummarizer_Defaults(t *testing.T) {
	s := NewSummarizer("", "", 0)

	assert.Nil(t, s.client)
	assert.Equal(t, defaultModel, string(s.model))
	assert.Equal(t, 200, s.maxTokens)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("laptop", []string{"- Amazon Laptop at $500"})

	assert.Contains(t, prompt, "Query: laptop")
	assert.Contains(t, prompt, "- Amazon Laptop at $500")
	assert.Contains(t, prompt, "sustainability-minded student")
}
