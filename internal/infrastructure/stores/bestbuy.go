package stores

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/shopwise/backend/internal/domain"
)

const bestBuyDefaultBaseURL = "https://www.bestbuy.com"

// BestBuy searches Best Buy product listings
type BestBuy struct {
	fetcher *Fetcher
	baseURL string
}

// NewBestBuy creates a Best Buy searcher. An empty baseURL selects the live site.
func NewBestBuy(fetcher *Fetcher, baseURL string) *BestBuy {
	if baseURL == "" {
		baseURL = bestBuyDefaultBaseURL
	}
	return &BestBuy{fetcher: fetcher, baseURL: baseURL}
}

// Store returns the retailer display name
func (b *BestBuy) Store() string { return "Best Buy" }

// Search fetches and parses the Best Buy search results page
func (b *BestBuy) Search(ctx context.Context, query string, limit int) ([]domain.RawListing, error) {
	body, err := b.fetcher.Get(ctx, b.baseURL+"/site/searchpage.jsp", url.Values{"st": {query}})
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return b.parse(doc, limit), nil
}

func (b *BestBuy) parse(doc *html.Node, limit int) []domain.RawListing {
	var results []domain.RawListing

	for _, node := range findAll(doc, elemClass("li", "sku-item")) {
		nameNode := findNested(node, elemClass("h4", "sku-header"), elem("a"))

		priceNode := findNested(node, elemClass("div", "priceView-hero-price"), elemAttr("span", "aria-hidden", "true"))
		if priceNode == nil {
			priceNode = findNested(node, elemClass("div", "priceView-customer-price"), elem("span"))
		}

		if nameNode == nil || priceNode == nil {
			continue
		}

		price, ok := cleanPrice(textContent(priceNode))
		if !ok {
			continue
		}

		link := attr(nameNode, "href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = bestBuyDefaultBaseURL + link
		}

		results = append(results, domain.RawListing{
			Store: b.Store(),
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
