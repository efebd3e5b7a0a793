package domain

// RawListing is a single product offer as scraped from a retailer results page,
// before scoring and carbon estimation.
type RawListing struct {
	Store string  `json:"store"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Link  string  `json:"link"`
}

// CarbonEstimate is an approximate footprint in kg CO2e plus a readability label.
type CarbonEstimate struct {
	KgCO2e float64 `json:"kg_co2e"`
	Label  string  `json:"label"`
}

// ProductResult is one retailer's offer for the queried product, annotated
// with an ethical score and a carbon estimate. The pair (store, link) is the
// only identity; results are never mutated after construction.
type ProductResult struct {
	Store        string         `json:"store"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	Link         string         `json:"link"`
	EthicalScore int            `json:"ethical_score"`
	Carbon       CarbonEstimate `json:"carbon"`
}

// SearchRequest is a product comparison request.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"` // listings per store
}

// SearchResponse is the full response for one search: the echoed query,
// ranked results, and a free-text summary (may be empty).
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []ProductResult `json:"results"`
	Summary string          `json:"summary"`
}
