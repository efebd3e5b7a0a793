package galileo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.galileo.ai/v1/evaluate"

// Evaluator forwards search payloads to Galileo for reliability checks.
// Evaluation is strictly optional: a missing key or a failed request is
// reported inside the result map, never as an error.
type Evaluator struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

// NewEvaluator creates an evaluator. An empty endpoint selects the hosted API.
func NewEvaluator(apiKey, endpoint string) *Evaluator {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Evaluator{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:   apiKey,
		endpoint: endpoint,
	}
}

// Evaluate sends the payload for evaluation and returns the verdict
func (e *Evaluator) Evaluate(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	if e.apiKey == "" {
		return map[string]interface{}{
			"status": "skipped",
			"reason": "missing Galileo API key",
		}, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorResult(err), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return errorResult(err), nil
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return errorResult(err), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return map[string]interface{}{
			"status": "error",
			"reason": resp.Status,
		}, nil
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errorResult(err), nil
	}
	return result, nil
}

func errorResult(err error) map[string]interface{} {
	return map[string]interface{}{
		"status": "error",
		"reason": err.Error(),
	}
}
