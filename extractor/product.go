package extractor

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Product-name extraction: an ordered fallback chain over the rendered page.
// Heading selectors first, then the Open Graph title, then the document
// title stripped of punctuation, and finally the literal "Product" so the
// response never carries an empty name.

var (
	productHeadingSel = mustSel(`.product-name, .product-title, h1.title, h1`)
	ogTitleSel        = mustSel(`meta[property="og:title"]`)
	pageTitleSel      = mustSel(`title`)
)

// ProductName extracts a display name for the product the page compares.
func ProductName(doc *goquery.Document) string {
	if name := firstText(doc.Selection, productHeadingSel); name != "" {
		return name
	}
	if og, ok := doc.FindMatcher(ogTitleSel).First().Attr("content"); ok {
		if name := strings.TrimSpace(og); name != "" {
			return name
		}
	}
	if title := firstText(doc.Selection, pageTitleSel); title != "" {
		if name := stripPunctuation(title); name != "" {
			return name
		}
	}
	return "Product"
}

// stripPunctuation removes everything except letters, digits and spaces and
// collapses the runs of whitespace page titles tend to accumulate.
func stripPunctuation(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}
