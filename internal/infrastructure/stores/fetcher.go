package stores

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopwise/backend/internal/domain"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/118.0.0.0 Safari/537.36"

// FetcherConfig holds tuning knobs for outbound retailer requests
type FetcherConfig struct {
	Timeout           time.Duration
	Retries           int
	RequestsPerSecond float64
	Burst             int
}

// Fetcher performs rate-limited GET requests against retailer search pages.
// Retailers throttle aggressively, so every request goes through one shared
// limiter and carries a browser User-Agent.
type Fetcher struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	retries     int
}

// NewFetcher creates a fetcher shared by all store searchers
func NewFetcher(config FetcherConfig) *Fetcher {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	retries := config.Retries
	if retries < 1 {
		retries = 3
	}
	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1.0
	}
	burst := config.Burst
	if burst < 1 {
		burst = 4
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		retries:     retries,
	}
}

// Get fetches a retailer page, retrying transient failures
func (f *Fetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	reqURL := rawURL
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", rawURL, params.Encode())
	}

	var lastErr error
	for attempt := 1; attempt <= f.retries; attempt++ {
		// Wait for rate limiter
		if err := f.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := f.doRequest(ctx, reqURL)
		if err == nil {
			return body, nil
		}

		log.Printf("[STORES] Request error (attempt %d/%d) for %s: %v", attempt, f.retries, rawURL, err)
		lastErr = err
		if attempt < f.retries {
			time.Sleep(exponentialBackoff(attempt))
		}
	}

	return nil, lastErr
}

// doRequest executes one HTTP GET with browser-like headers
func (f *Fetcher) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrStoreUnavailable, resp.StatusCode)
	}

	return body, nil
}

// exponentialBackoff returns the sleep duration before a retry
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
