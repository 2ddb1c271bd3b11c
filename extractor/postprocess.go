package extractor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/trymee/pricescout/models"
)

// maxOffers is how many offers a response carries at most.
const maxOffers = 5

// Process turns raw candidates into the final ranked offer list:
//
//  1. stable sort ascending by parsed price (ties keep extraction order)
//  2. drop repeated platforms, keeping the cheapest occurrence
//  3. derive the discount percentage where an original price is known
//  4. fill field defaults
//  5. truncate to maxOffers
//
// The second return value is the offer count before truncation, reported to
// callers as totalOffers.
func Process(candidates []models.OfferCandidate, productURL string) ([]models.Offer, int) {
	sorted := make([]models.OfferCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, _ := ParsePrice(sorted[i].Price)
		pj, _ := ParsePrice(sorted[j].Price)
		return pi < pj
	})

	// The tabular and card strategies do not deduplicate within a pass;
	// sorting first means the surviving entry per platform is the cheapest.
	seen := make(map[string]struct{}, len(sorted))
	deduped := sorted[:0]
	for _, c := range sorted {
		key := strings.ToLower(c.Platform)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, c)
	}

	total := len(deduped)
	offers := make([]models.Offer, 0, min(total, maxOffers))
	for _, c := range deduped {
		if len(offers) == maxOffers {
			break
		}
		offers = append(offers, finalize(c, productURL))
	}
	return offers, total
}

// finalize converts one candidate into its wire form, deriving the discount
// and applying field defaults.
func finalize(c models.OfferCandidate, productURL string) models.Offer {
	offer := models.Offer{
		Platform:      c.Platform,
		Price:         c.Price,
		OriginalPrice: opt(c.OriginalPrice),
		Rating:        opt(c.Rating),
		Reviews:       opt(c.Reviews),
		Availability:  c.Availability,
		DeliveryTime:  c.DeliveryTime,
		BuyURL:        c.BuyURL,
	}

	if offer.Availability == "" {
		offer.Availability = "In Stock"
	}
	if offer.DeliveryTime == "" {
		offer.DeliveryTime = "2-3 days"
	}
	if offer.BuyURL == "" {
		offer.BuyURL = productURL
	}

	offer.Discount = discount(c.Price, c.OriginalPrice)
	return offer
}

// discount computes the integer percentage saved relative to the original
// price. Present only when the original price is known and strictly greater
// than the current price; an equal or lower original yields no discount.
// Rounding is standard half-away-from-zero, so ₹999 against ₹1,000 is "0%"
// — present, because the original is still strictly greater.
func discount(price, originalPrice string) *string {
	cur, ok := ParsePrice(price)
	if !ok {
		return nil
	}
	orig, ok := ParsePrice(originalPrice)
	if !ok || orig <= cur {
		return nil
	}
	pct := int(math.Round(100 * float64(orig-cur) / float64(orig)))
	s := fmt.Sprintf("%d%%", pct)
	return &s
}

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
