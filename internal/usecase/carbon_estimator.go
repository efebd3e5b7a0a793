package usecase

import (
	"math"
	"strings"

	"github.com/shopwise/backend/internal/domain"
)

// categoryBase holds a baseline kg CO2e estimate for one product category.
// Baselines are sourced from public LCA writeups. Category inference checks
// keywords in order, so earlier entries win when a name matches several.
type categoryBase struct {
	keyword string
	kgCO2e  float64
}

var carbonCategoryBases = []categoryBase{
	{"laptop", 200.0},
	{"notebook", 5.0},
	{"headphone", 45.0},
	{"earbud", 30.0},
	{"phone", 120.0},
	{"tablet", 110.0},
	{"calculator", 15.0},
	{"mouse", 25.0},
	{"keyboard", 35.0},
	{"backpack", 40.0},
	{"book", 8.0},
	{"textbook", 18.0},
	{"charger", 10.0},
	{"monitor", 140.0},
}

// genericCategoryBase is used when no category keyword matches the name
const genericCategoryBase = 80.0

var lowerImpactKeywords = []string{"refurbished", "renewed", "recycled", "eco", "sustainable"}
var higherImpactKeywords = []string{"gaming", "4k", "ultra", "pro"}

// Carbon label thresholds in kg CO2e
const (
	lowImpactThreshold      = 30.0
	moderateImpactThreshold = 120.0
)

// Carbon labels attached to estimates. The presentation layer maps these to
// display tiers; anything it does not recognize renders as high impact.
const (
	LabelLowImpact      = "Low impact"
	LabelModerateImpact = "Moderate impact"
	LabelHighImpact     = "High impact"
)

// EstimateCarbon returns an approximate carbon footprint for a product listing.
func EstimateCarbon(listing domain.RawListing) domain.CarbonEstimate {
	lowered := strings.ToLower(listing.Name)

	base := genericCategoryBase
	for _, category := range carbonCategoryBases {
		if strings.Contains(lowered, category.keyword) {
			base = category.kgCO2e
			break
		}
	}

	if containsAny(lowered, lowerImpactKeywords) {
		base *= 0.8
	}
	if containsAny(lowered, higherImpactKeywords) {
		base *= 1.15
	}

	// Small adjustment for price (cheaper often means lighter/simpler devices)
	if listing.Price < 50 {
		base *= 0.9
	} else if listing.Price > 500 {
		base *= 1.1
	}

	var label string
	switch {
	case base <= lowImpactThreshold:
		label = LabelLowImpact
	case base <= moderateImpactThreshold:
		label = LabelModerateImpact
	default:
		label = LabelHighImpact
	}

	return domain.CarbonEstimate{
		KgCO2e: math.Round(base*10) / 10,
		Label:  label,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
