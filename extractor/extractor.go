package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/trymee/pricescout/models"
)

// Extractor pulls offer candidates out of a rendered comparison page. It
// runs a fixed cascade of strategies, each tuned to one page layout, and
// stops at the first one that yields anything: a structured read is always
// preferred, the text scan is the last resort.
type Extractor struct {
	strategies []strategy
}

type strategy struct {
	name string
	run  func(doc *goquery.Document, productURL string) []models.OfferCandidate
}

// Result reports what one extraction pass produced. Attempted lists the
// strategies that ran, in order, so callers (and tests) can observe the
// short-circuit.
type Result struct {
	Candidates []models.OfferCandidate
	Strategy   string
	Attempted  []string
}

// New creates an Extractor with the standard three-strategy cascade.
func New() *Extractor {
	return &Extractor{
		strategies: []strategy{
			{name: "tabular", run: extractTabular},
			{name: "cards", run: extractCards},
			{name: "heuristic", run: extractHeuristic},
		},
	}
}

// Extract runs the cascade against doc. productURL is the caller-submitted
// product page, used as the buy-link fallback. Later strategies never run
// once an earlier one has produced at least one candidate.
func (e *Extractor) Extract(doc *goquery.Document, productURL string) Result {
	var res Result
	for _, s := range e.strategies {
		res.Attempted = append(res.Attempted, s.name)
		if cands := s.run(doc, productURL); len(cands) > 0 {
			res.Candidates = cands
			res.Strategy = s.name
			return res
		}
	}
	return res
}

// firstText returns the trimmed text of the first element under s matching m,
// or "" when nothing matches.
func firstText(s *goquery.Selection, m goquery.Matcher) string {
	return strings.TrimSpace(s.FindMatcher(m).First().Text())
}

// mustSel compiles a CSS selector at package init. The selector lists below
// are constants, so a parse failure is a programming error.
func mustSel(css string) cascadia.Selector {
	return cascadia.MustCompile(css)
}
