package usecase

import (
	"strings"

	"github.com/shopwise/backend/internal/domain"
)

// baseStoreScores holds the starting sustainability score per retailer.
// Unknown stores get defaultStoreScore.
var baseStoreScores = map[string]int{
	"Amazon":   2,
	"Walmart":  3,
	"Best Buy": 3,
	"Newegg":   2,
}

const defaultStoreScore = 2

// keywordBonuses adds points for sustainability signals in the product name
var keywordBonuses = map[string]int{
	"refurbished": 1,
	"renewed":     1,
	"eco":         2,
	"recycled":    2,
	"organic":     2,
	"fair trade":  2,
	"solar":       1,
	"energy star": 1,
}

// Ethical score bounds
const (
	minEthicalScore = 1
	maxEthicalScore = 5
)

// ScoreListing returns an ethical score in [1, 5] for a product listing,
// derived from the retailer's base score plus keyword bonuses.
func ScoreListing(listing domain.RawListing) int {
	score, ok := baseStoreScores[listing.Store]
	if !ok {
		score = defaultStoreScore
	}

	nameLower := strings.ToLower(listing.Name)
	for keyword, points := range keywordBonuses {
		if strings.Contains(nameLower, keyword) {
			score += points
		}
	}

	if score < minEthicalScore {
		score = minEthicalScore
	}
	if score > maxEthicalScore {
		score = maxEthicalScore
	}
	return score
}
