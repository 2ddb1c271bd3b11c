package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/trymee/pricescout/models"
	"golang.org/x/net/html"
)

// Strategy C: last-resort text scan for pages whose markup matches neither
// layout. Every text node is checked for a currency-marked price; when one
// sits near a known retailer keyword, a minimal candidate is emitted. This
// path never invents ratings, reviews or original prices — those fields stay
// absent rather than being guessed.

// heuristicMaxHits caps how many candidates the text scan emits.
const heuristicMaxHits = 5

// retailerKeywords is the fixed set of platforms the scan recognises, in
// canonical order. Each keyword may match at most once per extraction.
var retailerKeywords = []struct {
	keyword string
	name    string
}{
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"myntra", "Myntra"},
	{"ajio", "Ajio"},
	{"nykaa", "Nykaa"},
	{"snapdeal", "Snapdeal"},
}

func extractHeuristic(doc *goquery.Document, productURL string) []models.OfferCandidate {
	seen := make(map[string]struct{})
	var out []models.OfferCandidate

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(out) >= heuristicMaxHits {
			return
		}
		if n.Type == html.TextNode && !inSkippedElement(n) {
			if price, _, ok := parsePriceToken(n.Data); ok {
				if name, ok := retailerNear(n, seen); ok {
					out = append(out, models.OfferCandidate{
						Platform:     name,
						Price:        price,
						Availability: "Check Availability",
						BuyURL:       productURL,
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Selection.Nodes {
		walk(root)
	}

	return out
}

// retailerNear looks for a not-yet-seen retailer keyword in the text
// surrounding a price node: first the nearest element ancestor's text, then
// one level further up, since pages often put the store name and the price
// in sibling elements.
func retailerNear(n *html.Node, seen map[string]struct{}) (string, bool) {
	anc := n.Parent
	for anc != nil && anc.Type != html.ElementNode {
		anc = anc.Parent
	}
	for level := 0; level < 2 && anc != nil; level++ {
		text := strings.ToLower(nodeText(anc))
		for _, r := range retailerKeywords {
			if _, dup := seen[r.keyword]; dup {
				continue
			}
			if strings.Contains(text, r.keyword) {
				seen[r.keyword] = struct{}{}
				return r.name, true
			}
		}
		anc = anc.Parent
	}
	return "", false
}

// inSkippedElement reports whether a text node sits inside markup that never
// carries visible offer text.
func inSkippedElement(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			switch p.Data {
			case "script", "style", "noscript", "template":
				return true
			}
		}
	}
	return false
}

// nodeText concatenates all text under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
