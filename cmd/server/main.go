package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopwise/backend/config"
	httpDelivery "github.com/shopwise/backend/internal/delivery/http"
	"github.com/shopwise/backend/internal/domain"
	"github.com/shopwise/backend/internal/infrastructure/anthropic"
	"github.com/shopwise/backend/internal/infrastructure/cache"
	"github.com/shopwise/backend/internal/infrastructure/galileo"
	"github.com/shopwise/backend/internal/infrastructure/signup"
	"github.com/shopwise/backend/internal/infrastructure/stores"
	"github.com/shopwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	fetcher := stores.NewFetcher(stores.FetcherConfig{
		Timeout:           cfg.Stores.Timeout,
		Retries:           cfg.Stores.Retries,
		RequestsPerSecond: cfg.Stores.RequestsPerSecond,
		Burst:             cfg.Stores.Burst,
	})
	storeSearchers := []domain.StoreSearcher{
		stores.NewAmazon(fetcher, ""),
		stores.NewWalmart(fetcher, ""),
		stores.NewBestBuy(fetcher, ""),
		stores.NewNewegg(fetcher, ""),
	}
	for _, s := range storeSearchers {
		log.Printf("Store enabled: %s", s.Store())
	}

	summarizer := anthropic.NewSummarizer(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	if cfg.Anthropic.APIKey != "" {
		log.Printf("Summarization model configured: %s", cfg.Anthropic.Model)
	} else {
		log.Printf("WARNING: no Anthropic API key set - using fallback summaries")
	}

	evaluator := galileo.NewEvaluator(cfg.Galileo.APIKey, cfg.Galileo.Endpoint)
	if cfg.Galileo.APIKey == "" {
		log.Printf("Galileo evaluation disabled (no API key)")
	}

	signupStore, err := signup.Open(cfg.Signup.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open signup store: %v", err)
	}
	defer signupStore.Close()
	log.Printf("Signup store: %s", cfg.Signup.DatabasePath)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		storeSearchers,
		summarizer,
		memoryCache,
		usecase.SearchServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, evaluator, signupStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
