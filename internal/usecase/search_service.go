package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopwise/backend/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

const defaultLimitPerStore = 3

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
}

// SearchService aggregates retailer listings, scores them, and produces a
// ranked, summarized response. Whole responses are cached per query+limit.
type SearchService struct {
	stores     []domain.StoreSearcher
	summarizer domain.Summarizer
	cache      domain.CacheRepository
	cacheTTL   time.Duration
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(
	stores []domain.StoreSearcher,
	summarizer domain.Summarizer,
	cache domain.CacheRepository,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &SearchService{
		stores:     stores,
		summarizer: summarizer,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Search runs one comparison query.
// Flow: check cache -> fan out to stores -> dedup -> score -> rank -> summarize -> cache
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResponse, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	query := strings.TrimSpace(request.Query)
	limit := request.Limit
	if limit <= 0 {
		limit = defaultLimitPerStore
	}

	cacheKey := s.generateCacheKey(query, limit)

	// Try cache first
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	listings := s.collectListings(ctx, query, limit)
	results := buildResults(listings)

	summary, err := s.summarizer.Summarize(ctx, query, results)
	if err != nil {
		// Summaries are best-effort; the ranked results still stand on their own
		log.Printf("[SEARCH] summarization failed for %q: %v", query, err)
		summary = ""
	}

	response := &domain.SearchResponse{
		Query:   query,
		Results: results,
		Summary: summary,
	}

	if err := s.setInCache(ctx, cacheKey, response); err != nil {
		log.Printf("[SEARCH] failed to cache response for %q: %v", query, err)
	}

	return response, nil
}

// collectListings queries every store concurrently. A failing store is logged
// and skipped; its listings are simply absent from the merged result.
func (s *SearchService) collectListings(ctx context.Context, query string, limit int) []domain.RawListing {
	perStore := make([][]domain.RawListing, len(s.stores))

	g, ctx := errgroup.WithContext(ctx)
	for i, store := range s.stores {
		i, store := i, store
		g.Go(func() error {
			listings, err := store.Search(ctx, query, limit)
			if err != nil {
				log.Printf("[SEARCH] %s search failed: %v", store.Store(), err)
				return nil
			}
			perStore[i] = listings
			return nil
		})
	}
	// Goroutines never return an error; Wait is only a join point
	_ = g.Wait()

	var merged []domain.RawListing
	for _, listings := range perStore {
		merged = append(merged, listings...)
	}
	return merged
}

// buildResults deduplicates listings by link, annotates each with ethical
// score and carbon estimate, and sorts by price ascending with higher
// ethical score breaking ties.
func buildResults(listings []domain.RawListing) []domain.ProductResult {
	seen := make(map[string]bool, len(listings))
	results := make([]domain.ProductResult, 0, len(listings))

	for _, listing := range listings {
		if seen[listing.Link] {
			continue
		}
		seen[listing.Link] = true

		results = append(results, domain.ProductResult{
			Store:        listing.Store,
			Name:         listing.Name,
			Price:        listing.Price,
			Link:         listing.Link,
			EthicalScore: ScoreListing(listing),
			Carbon:       EstimateCarbon(listing),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Price != results[j].Price {
			return results[i].Price < results[j].Price
		}
		return results[i].EthicalScore > results[j].EthicalScore
	})

	return results
}

// generateCacheKey creates a normalized cache key for a query.
// Format: "search:{normalized_query}:{limit}"
func (s *SearchService) generateCacheKey(query string, limit int) string {
	return fmt.Sprintf("search:%s:%d", normalizeForCacheKey(query), limit)
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache retrieves a cached search response
func (s *SearchService) getFromCache(ctx context.Context, key string) (*domain.SearchResponse, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	encoded, ok := value.(string)
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	var response domain.SearchResponse
	if err := json.Unmarshal([]byte(encoded), &response); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &response, nil
}

// setInCache stores a search response in cache as JSON
func (s *SearchService) setInCache(ctx context.Context, key string, response *domain.SearchResponse) error {
	encoded, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, string(encoded), s.cacheTTL)
}
