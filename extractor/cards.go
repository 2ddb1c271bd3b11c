package extractor

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/trymee/pricescout/models"
)

// Strategy B: card grids. Some comparison pages render each retailer offer
// as a standalone card instead of a table row. Cards never show a struck
// original price, so that field stays absent on this path.

var (
	cardSel = mustSel(`.store-card, .offer-card, .price-card, .comparison-card, [class*="store-card"], [class*="offer-card"]`)

	cardNameSel = mustSel(`.store-name, .merchant-name, .platform, h3, h4`)
)

func extractCards(doc *goquery.Document, productURL string) []models.OfferCandidate {
	var out []models.OfferCandidate

	doc.FindMatcher(cardSel).Each(func(_ int, card *goquery.Selection) {
		platform, ok := NormalizePlatformName(firstText(card, cardNameSel))
		if !ok {
			return
		}
		price, _, ok := parsePriceToken(firstText(card, priceSel))
		if !ok {
			return
		}

		cand := models.OfferCandidate{
			Platform:     platform,
			Price:        price,
			Availability: "Available",
			BuyURL:       cardBuyLink(card, productURL),
		}

		if rating, ok := ParseRating(firstText(card, ratingSel)); ok {
			cand.Rating = rating
		}
		if reviews, ok := ParseReviewCount(firstText(card, reviewsSel)); ok {
			cand.Reviews = reviews
		}
		if delivery := firstText(card, deliverySel); delivery != "" {
			cand.DeliveryTime = delivery
		}
		if stock := firstText(card, stockSel); stock != "" {
			cand.Availability = stock
		}

		out = append(out, cand)
	})

	return out
}

// cardBuyLink takes the first anchor inside the card, else the product URL.
func cardBuyLink(card *goquery.Selection, productURL string) string {
	if href, ok := card.FindMatcher(buyAnchorSel).First().Attr("href"); ok && href != "" {
		return href
	}
	return productURL
}
