package stores

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/shopwise/backend/internal/domain"
)

const walmartDefaultBaseURL = "https://www.walmart.com"

// Walmart searches Walmart product listings
type Walmart struct {
	fetcher *Fetcher
	baseURL string
}

// NewWalmart creates a Walmart searcher. An empty baseURL selects the live site.
func NewWalmart(fetcher *Fetcher, baseURL string) *Walmart {
	if baseURL == "" {
		baseURL = walmartDefaultBaseURL
	}
	return &Walmart{fetcher: fetcher, baseURL: baseURL}
}

// Store returns the retailer display name
func (w *Walmart) Store() string { return "Walmart" }

// Search fetches and parses the Walmart search results page
func (w *Walmart) Search(ctx context.Context, query string, limit int) ([]domain.RawListing, error) {
	body, err := w.fetcher.Get(ctx, w.baseURL+"/search", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return w.parse(doc, limit), nil
}

func (w *Walmart) parse(doc *html.Node, limit int) []domain.RawListing {
	var results []domain.RawListing

	items := findAll(doc, func(n *html.Node) bool {
		return n.Data == "div" && hasAttr(n, "data-item-id")
	})

	for _, node := range items {
		nameNode := findNested(node, elemClass("a", "product-title-link"), elem("span"))
		if nameNode == nil {
			nameNode = findFirst(node, elemClass("span", "lh-title"))
		}

		priceNode := findNested(node, elemClass("span", "price-main"), elemAttr("span", "aria-hidden", "true"))
		if priceNode == nil {
			priceNode = findFirst(node, elemAttr("div", "data-automation-id", "product-price"))
		}

		linkNode := findFirst(node, elemClass("a", "product-title-link"))
		if linkNode == nil {
			linkNode = findFirst(node, elemClass("a", "absolute"))
		}

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
			link = walmartDefaultBaseURL + href
		}

		results = append(results, domain.RawListing{
			Store: w.Store(),
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
