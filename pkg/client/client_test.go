package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwise/backend/internal/domain"
)

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "wireless headphones", payload["query"])
		assert.Equal(t, float64(3), payload["limit"])

		json.NewEncoder(w).Encode(domain.SearchResponse{
			Query: "wireless headphones",
			Results: []domain.ProductResult{
				{
					Store: "Walmart", Name: "onn. Headphones", Price: 24.88,
					Link: "https://walmart.example/h1", EthicalScore: 3,
					Carbon: domain.CarbonEstimate{KgCO2e: 40.5, Label: "Moderate impact"},
				},
			},
			Summary: "Walmart has the best deal.",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Search(context.Background(), "wireless headphones", 3)

	require.NoError(t, err)
	assert.Equal(t, "wireless headphones", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 24.88, resp.Results[0].Price)
	assert.Equal(t, "Moderate impact", resp.Results[0].Carbon.Label)
	assert.Equal(t, "Walmart has the best deal.", resp.Summary)
}

func TestSearch_MissingSummaryTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":"laptop","results":[]}`))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Search(context.Background(), "laptop", 3)

	require.NoError(t, err)
	assert.Empty(t, resp.Summary)
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Search(context.Background(), "laptop", 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchFailed))
	assert.Contains(t, err.Error(), "status 500")
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Search(context.Background(), "laptop", 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchFailed))
}

func TestSearch_TransportError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Search(context.Background(), "laptop", 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchFailed))
}

func TestHealth(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		c := New(server.URL)
		assert.NoError(t, c.Health(context.Background()))
	})

	t.Run("unhealthy backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := New(server.URL)
		err := c.Health(context.Background())
		assert.True(t, errors.Is(err, domain.ErrSearchFailed))
	})
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{}
	c := New("http://localhost:8000", WithHTTPClient(custom))

	assert.Same(t, custom, c.httpClient)
}
