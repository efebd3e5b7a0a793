package stores

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/net/html"

	"github.com/shopwise/backend/internal/domain"
)

const neweggDefaultBaseURL = "https://www.newegg.com"

// Newegg searches Newegg product listings
type Newegg struct {
	fetcher *Fetcher
	baseURL string
}

// NewNewegg creates a Newegg searcher. An empty baseURL selects the live site.
func NewNewegg(fetcher *Fetcher, baseURL string) *Newegg {
	if baseURL == "" {
		baseURL = neweggDefaultBaseURL
	}
	return &Newegg{fetcher: fetcher, baseURL: baseURL}
}

// Store returns the retailer display name
func (n *Newegg) Store() string { return "Newegg" }

// Search fetches and parses the Newegg search results page
func (n *Newegg) Search(ctx context.Context, query string, limit int) ([]domain.RawListing, error) {
	body, err := n.fetcher.Get(ctx, n.baseURL+"/p/pl", url.Values{"d": {query}})
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return n.parse(doc, limit), nil
}

func (n *Newegg) parse(doc *html.Node, limit int) []domain.RawListing {
	var results []domain.RawListing

	for _, node := range findAll(doc, elemClass("div", "item-cell")) {
		nameNode := findFirst(node, elemClass("a", "item-title"))
		priceNode := findNested(node, elemClass("li", "price-current"), elem("strong"))
		centNode := findNested(node, elemClass("li", "price-current"), elem("sup"))

		if nameNode == nil || priceNode == nil {
			continue
		}

		// Newegg splits dollars and cents across two elements
		priceText := textContent(priceNode)
		if centNode != nil {
			priceText += textContent(centNode)
		}

		price, ok := cleanPrice(priceText)
		if !ok {
			continue
		}

		results = append(results, domain.RawListing{
			Store: n.Store(),
			Name:  textContent(nameNode),
			Price: price,
			Link:  attr(nameNode, "href"),
		})
		if len(results) >= limit {
			break
		}
	}

	return results
}
