package stores

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// priceRegex extracts the leading numeric portion of a price string
var priceRegex = regexp.MustCompile(`(\d+[.,]?\d*)`)

// cleanPrice parses a price string like "$1,299.99" into a float
func cleanPrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", "")
	match := priceRegex.FindString(raw)
	if match == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func parseHTML(body []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(body))
}

// matchFunc decides whether one node is of interest
type matchFunc func(*html.Node) bool

// findAll collects every node in the subtree matching the predicate,
// in document order
func findAll(root *html.Node, match matchFunc) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// findFirst returns the first node in the subtree matching the predicate
func findFirst(root *html.Node, match matchFunc) *html.Node {
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findNested resolves a chain of predicates, each searched within the
// previous match's subtree ("h2 a span" style descent)
func findNested(root *html.Node, matches ...matchFunc) *html.Node {
	node := root
	for _, match := range matches {
		// Search children so the current node is not re-matched on descent
		var next *html.Node
		for c := node.FirstChild; c != nil && next == nil; c = c.NextSibling {
			next = findFirst(c, match)
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// elem matches an element by tag name
func elem(tag string) matchFunc {
	return func(n *html.Node) bool { return n.Data == tag }
}

// elemClass matches an element by tag name and class
func elemClass(tag, class string) matchFunc {
	return func(n *html.Node) bool { return n.Data == tag && hasClass(n, class) }
}

// elemAttr matches an element by tag name and exact attribute value
func elemAttr(tag, key, value string) matchFunc {
	return func(n *html.Node) bool { return n.Data == tag && attr(n, key) == value }
}

// textContent returns the concatenated text of a subtree, whitespace-trimmed
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
