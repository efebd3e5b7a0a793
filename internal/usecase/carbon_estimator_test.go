package usecase

import (
	"testing"

	"github.com/shopwise/backend/internal/domain"
)

func TestEstimateCarbon(t *testing.T) {
	tests := []struct {
		name       string
		listing    domain.RawListing
		wantKgCO2e float64
		wantLabel  string
	}{
		{
			name:       "laptop in mid price range",
			listing:    domain.RawListing{Name: "Dell Latitude Laptop", Price: 400},
			wantKgCO2e: 200.0,
			wantLabel:  "High impact",
		},
		{
			name: "gaming laptop above price threshold",
			// 200 * 1.15 (gaming) * 1.1 (price > 500) = 253.0
			listing:    domain.RawListing{Name: "Gaming Laptop RTX", Price: 1200},
			wantKgCO2e: 253.0,
			wantLabel:  "High impact",
		},
		{
			name: "refurbished calculator",
			// 15 * 0.8 (refurbished) * 0.9 (price < 50) = 10.8
			listing:    domain.RawListing{Name: "Refurbished Graphing Calculator", Price: 20},
			wantKgCO2e: 10.8,
			wantLabel:  "Low impact",
		},
		{
			name: "cheap spiral notebook",
			// 5 * 0.9 = 4.5
			listing:    domain.RawListing{Name: "Spiral Notebook College Ruled", Price: 3},
			wantKgCO2e: 4.5,
			wantLabel:  "Low impact",
		},
		{
			name:       "headphones at exactly 50 get no price adjustment",
			listing:    domain.RawListing{Name: "Wireless Headphones", Price: 50},
			wantKgCO2e: 45.0,
			wantLabel:  "Moderate impact",
		},
		{
			name:       "unknown category uses generic baseline",
			listing:    domain.RawListing{Name: "Desk Lamp", Price: 60},
			wantKgCO2e: 80.0,
			wantLabel:  "Moderate impact",
		},
		{
			name: "cheap unknown category",
			// 80 * 0.9 = 72
			listing:    domain.RawListing{Name: "Desk Lamp", Price: 25},
			wantKgCO2e: 72.0,
			wantLabel:  "Moderate impact",
		},
		{
			name: "earbuds at low threshold boundary",
			// 30 with no adjustments stays exactly at the Low cutoff
			listing:    domain.RawListing{Name: "Earbud Set", Price: 100},
			wantKgCO2e: 30.0,
			wantLabel:  "Low impact",
		},
		{
			name: "textbook matches book category first",
			// "book" precedes "textbook" in the category list: 8 * 0.9 = 7.2
			listing:    domain.RawListing{Name: "Biology Textbook", Price: 40},
			wantKgCO2e: 7.2,
			wantLabel:  "Low impact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCarbon(tt.listing)
			if got.KgCO2e != tt.wantKgCO2e {
				t.Errorf("KgCO2e = %v, want %v", got.KgCO2e, tt.wantKgCO2e)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestEstimateCarbonRounding(t *testing.T) {
	// 45 * 1.15 (pro) = 51.75, rounds to 51.8
	got := EstimateCarbon(domain.RawListing{Name: "Pro Headphones", Price: 100})
	if got.KgCO2e != 51.8 {
		t.Errorf("KgCO2e = %v, want 51.8", got.KgCO2e)
	}
}
