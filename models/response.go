package models

// ScrapeResponse is the success response for POST /api/scrape-buyhatke.
type ScrapeResponse struct {
	Success bool `json:"success"`

	// ProductName is the product title extracted from the comparison page,
	// or the literal "Product" when nothing usable was found.
	ProductName string `json:"productName"`

	// OriginalURL echoes the product URL the caller submitted.
	OriginalURL string `json:"originalUrl"`

	// BuyhatkeURL is the comparison-site URL that was rendered.
	BuyhatkeURL string `json:"buyhatkeUrl"`

	// Offers is the cleaned, ranked offer list, at most five entries,
	// cheapest first.
	Offers []Offer `json:"offers"`

	// TotalOffers is the number of candidates extracted before truncation.
	TotalOffers int `json:"totalOffers"`

	// Timestamp is the RFC 3339 time the scrape completed.
	Timestamp string `json:"timestamp"`

	// ScrapedFrom names the comparison source.
	ScrapedFrom string `json:"scrapedFrom"`
}

// ErrorResponse is the body for every non-2xx outcome.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// Message is a human-readable explanation. Empty on plain client
	// errors such as a missing product URL.
	Message string `json:"message,omitempty"`

	// BuyhatkeURL is included on "no offers" outcomes so callers can
	// inspect the page that yielded nothing.
	BuyhatkeURL string `json:"buyhatkeUrl,omitempty"`

	// Details carries the underlying fault message on 5xx outcomes.
	Details string `json:"details,omitempty"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp string    `json:"timestamp"`
	Uptime    string    `json:"uptime"`
	Pages     PoolStats `json:"pages"`
}

// PoolStats reports the state of the browser page pool.
type PoolStats struct {
	MaxPages    int `json:"max_pages"`
	ActivePages int `json:"active_pages"`
}
