// Package present holds the display-side ranking and classification rules
// for product results. All functions are pure: inputs are never mutated.
package present

import (
	"fmt"
	"sort"

	"github.com/shopwise/backend/internal/domain"
)

// SortMode selects the primary ranking key
type SortMode int

const (
	// ByPrice ranks by price ascending, carbon footprint breaking ties
	ByPrice SortMode = iota
	// ByCarbon ranks by carbon footprint ascending, price breaking ties
	ByCarbon
)

// Tier is a display category for a result's carbon footprint
type Tier string

const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// Rank returns a new slice ordered by the chosen mode. The sort is stable:
// results equal on both keys keep their relative input order.
func Rank(results []domain.ProductResult, mode SortMode) []domain.ProductResult {
	ranked := make([]domain.ProductResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if mode == ByCarbon {
			if a.Carbon.KgCO2e != b.Carbon.KgCO2e {
				return a.Carbon.KgCO2e < b.Carbon.KgCO2e
			}
			return a.Price < b.Price
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Carbon.KgCO2e < b.Carbon.KgCO2e
	})

	return ranked
}

// TierFor maps a backend-supplied carbon label to a display tier. Labels are
// matched exactly; anything unrecognized is shown as high impact so unknown
// values are never presented as harmless.
func TierFor(label string) Tier {
	switch label {
	case "Low impact":
		return TierLow
	case "Moderate impact":
		return TierModerate
	default:
		return TierHigh
	}
}

// FormatPrice renders a price for display with two decimal places
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
