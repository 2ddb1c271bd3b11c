package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/trymee/pricescout/models"
)

// Strategy A: the comparison table Buyhatke renders on most product pages.
// Each data row carries one retailer offer; header rows and rows missing a
// parseable store name or price are skipped without failing the pass.

var (
	comparisonRowSel = mustSel(`.comparison-table tr, [class*="comparison"] table tr, table.price-table tr, table tr`)
	headerCellSel    = mustSel(`th`)

	storeNameSel = mustSel(`.store-name, .seller-name, .merchant-name, .vendor, td.store, td:first-child`)
	priceSel     = mustSel(`.deal-price, .final-price, .current-price, .price, td.price, .amount`)
	origPriceSel = mustSel(`.original-price, .mrp, .strike-price, del, s, strike`)
	ratingSel    = mustSel(`.rating, .stars, [class*="rating"]`)
	reviewsSel   = mustSel(`.reviews, .review-count, [class*="review"]`)
	deliverySel  = mustSel(`.delivery, .shipping, [class*="delivery"]`)
	stockSel     = mustSel(`.availability, .stock, [class*="stock"]`)

	buyAnchorSel = mustSel(`a[href]`)
	buyClassSel  = mustSel(`a.buy-link, a.buy-now, a.buy-button, a[class*="buy"]`)

	// Known retailer domains; an anchor pointing at one of these is the
	// row's purchase link.
	retailerHostRe = regexp.MustCompile(`(?i)(amazon|flipkart|myntra|ajio|nykaa|snapdeal)\.`)
)

func extractTabular(doc *goquery.Document, productURL string) []models.OfferCandidate {
	var out []models.OfferCandidate

	doc.FindMatcher(comparisonRowSel).Each(func(_ int, row *goquery.Selection) {
		if isHeaderRow(row) {
			return
		}

		platform, ok := NormalizePlatformName(firstText(row, storeNameSel))
		if !ok {
			return
		}
		price, _, ok := parsePriceToken(firstText(row, priceSel))
		if !ok {
			return
		}

		cand := models.OfferCandidate{
			Platform:     platform,
			Price:        price,
			Availability: "In Stock",
			BuyURL:       buyLink(row, productURL),
		}

		if orig, _, ok := parsePriceToken(firstText(row, origPriceSel)); ok {
			cand.OriginalPrice = orig
		}
		if rating, ok := ParseRating(firstText(row, ratingSel)); ok {
			cand.Rating = rating
		}
		if reviews, ok := ParseReviewCount(firstText(row, reviewsSel)); ok {
			cand.Reviews = reviews
		}
		if delivery := firstText(row, deliverySel); delivery != "" {
			cand.DeliveryTime = delivery
		}
		if stock := firstText(row, stockSel); stock != "" {
			cand.Availability = stock
		}

		out = append(out, cand)
	})

	return out
}

// isHeaderRow reports whether a table row is a column-header row: it either
// contains a <th> cell or carries a header class marker.
func isHeaderRow(row *goquery.Selection) bool {
	if row.FindMatcher(headerCellSel).Length() > 0 {
		return true
	}
	class, _ := row.Attr("class")
	return strings.Contains(strings.ToLower(class), "header")
}

// buyLink resolves the row's purchase link: first an anchor pointing at a
// known retailer domain, then a generic purchase-link class, then the
// product URL the caller submitted.
func buyLink(row *goquery.Selection, productURL string) string {
	link := ""
	row.FindMatcher(buyAnchorSel).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if retailerHostRe.MatchString(href) {
			link = href
			return false
		}
		return true
	})
	if link != "" {
		return link
	}
	if href, ok := row.FindMatcher(buyClassSel).First().Attr("href"); ok && href != "" {
		return href
	}
	return productURL
}
