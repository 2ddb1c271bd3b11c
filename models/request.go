package models

// ScrapeRequest is the payload for POST /api/scrape-buyhatke.
//
// ProductURL is not bound with gin's "required" validator on purpose: a
// missing URL must produce the fixed "Product URL required" error body, not
// gin's generic validation message.
type ScrapeRequest struct {
	// ProductURL is the retailer product page to find competing offers for.
	ProductURL string `json:"productUrl"`
}
