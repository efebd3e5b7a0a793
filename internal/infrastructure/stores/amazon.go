package stores

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/shopwise/backend/internal/domain"
)

const amazonDefaultBaseURL = "https://www.amazon.com"

// Amazon searches Amazon product listings
type Amazon struct {
	fetcher *Fetcher
	baseURL string
}

// NewAmazon creates an Amazon searcher. An empty baseURL selects the live site.
func NewAmazon(fetcher *Fetcher, baseURL string) *Amazon {
	if baseURL == "" {
		baseURL = amazonDefaultBaseURL
	}
	return &Amazon{fetcher: fetcher, baseURL: baseURL}
}

// Store returns the retailer display name
func (a *Amazon) Store() string { return "Amazon" }

// Search fetches and parses the Amazon search results page
func (a *Amazon) Search(ctx context.Context, query string, limit int) ([]domain.RawListing, error) {
	body, err := a.fetcher.Get(ctx, a.baseURL+"/s", url.Values{"k": {query}})
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return a.parse(doc, limit), nil
}

func (a *Amazon) parse(doc *html.Node, limit int) []domain.RawListing {
	var results []domain.RawListing

	for _, node := range findAll(doc, elemAttr("div", "data-component-type", "s-search-result")) {
		nameNode := findNested(node, elem("h2"), elem("a"), elem("span"))
		priceNode := findFirst(node, elemClass("span", "a-offscreen"))
		linkNode := findNested(node, elem("h2"), elem("a"))

		if nameNode == nil || priceNode == nil || linkNode == nil {
			continue
		}

		price, ok := cleanPrice(textContent(priceNode))
		if !ok {
			continue
		}

		href := attr(linkNode, "href")
		link := href
		if !strings.HasPrefix(href, "http") {
			link = amazonDefaultBaseURL + href
		}

		results = append(results, domain.RawListing{
			Store: a.Store(),
			Name:  textContent(nameNode),
			Price: price,
			Link:  link,
		})
		if len(results) >= limit {
			break
		}
	}

	return results
}
