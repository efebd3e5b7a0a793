package domain

import (
	"context"
	"time"
)

// StoreSearcher defines the interface for searching one retailer's catalog
type StoreSearcher interface {
	// Store returns the display name of the retailer
	Store() string
	// Search returns up to limit listings matching the query
	Search(ctx context.Context, query string, limit int) ([]RawListing, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Summarizer produces a natural-language recommendation for ranked results
type Summarizer interface {
	Summarize(ctx context.Context, query string, results []ProductResult) (string, error)
}

// Evaluator forwards a payload to an external reliability-check service.
// Implementations never fail hard; unavailability is reported in the result.
type Evaluator interface {
	Evaluate(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
}

// SignupRepository persists signup profiles
type SignupRepository interface {
	Save(ctx context.Context, profile *SignupProfile) (int64, error)
}
