package anthropic

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/shopwise/backend/internal/domain"
)

const defaultModel = "claude-3-5-sonnet-20240620"

const noListingsSummary = "I could not find any listings to summarize."

// Summarizer produces a shopping recommendation with Claude. Without an API
// key, or when the model call fails, it falls back to a deterministic
// bullet-list summary so the response never depends on model availability.
type Summarizer struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int
}

// NewSummarizer creates a summarizer. An empty apiKey disables model calls
// entirely; only the fallback summary is produced.
func NewSummarizer(apiKey, model string, maxTokens int) *Summarizer {
	var client *anthropic.Client
	if apiKey != "" {
		client = anthropic.NewClient(apiKey)
	}
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = 200
	}

	return &Summarizer{
		client:    client,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Summarize returns a natural-language recommendation for the ranked results
func (s *Summarizer) Summarize(ctx context.Context, query string, results []domain.ProductResult) (string, error) {
	if len(results) == 0 {
		return noListingsSummary, nil
	}

	bullets := bulletLines(results)
	fallback := fallbackSummary(query, bullets)

	if s.client == nil {
		return fallback, nil
	}

	temperature := float32(0.5)
	resp, err := s.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(buildPrompt(query, bullets)),
		},
	})
	if err != nil {
		log.Printf("[SUMMARY] model call failed, using fallback: %v", err)
		return fallback, nil
	}

	text := strings.TrimSpace(resp.GetFirstContentText())
	if text == "" {
		return fallback, nil
	}
	return text, nil
}

// bulletLines renders one line per result for both the prompt and the fallback
func bulletLines(results []domain.ProductResult) []string {
	lines := make([]string, 0, len(results))
	for _, item := range results {
		label := item.Carbon.Label
		if label == "" {
			label = "Unknown impact"
		}
		lines = append(lines, fmt.Sprintf(
			"- %s %s at $%.2f, ethical score %d, carbon %s (~%.1f kg CO2e)",
			item.Store, item.Name, item.Price, item.EthicalScore, label, item.Carbon.KgCO2e,
		))
	}
	return lines
}

func fallbackSummary(query string, bullets []string) string {
	return fmt.Sprintf("Top findings for '%s':\n%s\nPick the best balance of price and sustainability for your needs.",
		query, strings.Join(bullets, "\n"))
}

func buildPrompt(query string, bullets []string) string {
	return "You are advising a cost-conscious yet sustainability-minded student. " +
		"Summarize the best purchase options based on price and ethical score. " +
		"Highlight the cheapest and the most sustainable picks. " +
		"If helpful, include suggestions for trade-offs.\n\n" +
		fmt.Sprintf("Query: %s\nRanked Options:\n%s", query, strings.Join(bullets, "\n"))
}
