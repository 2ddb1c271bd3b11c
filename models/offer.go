package models

// OfferCandidate is a raw offer as pulled out of the rendered page by one
// extraction strategy. All fields are display strings; optional fields are
// simply empty. Candidates live only for the duration of one extraction
// pass — post-processing turns them into Offers.
type OfferCandidate struct {
	// Platform is the normalized retailer name (letters, digits, spaces;
	// at least two characters).
	Platform string

	// Price is the currency-prefixed display price, e.g. "₹1,299".
	// A candidate is only emitted when this parses to a positive integer.
	Price string

	// OriginalPrice is the pre-discount display price, when the page
	// shows one. Empty otherwise.
	OriginalPrice string

	// Rating is the retailer rating formatted to one decimal place,
	// e.g. "4.2". Empty when absent or out of the 0-5 range.
	Rating string

	// Reviews is the review count as displayed, separators kept,
	// e.g. "1,204". Empty when absent.
	Reviews string

	// BuyURL is the retailer's purchase link. Falls back to the product
	// URL the caller submitted when no anchor resolves.
	BuyURL string

	// Availability is the stock label. Each strategy applies its own
	// default when the page does not state one.
	Availability string

	// DeliveryTime is the delivery estimate as displayed. Empty when
	// absent; post-processing applies the default.
	DeliveryTime string
}

// Offer is the wire-level offer returned to API callers. Optional fields are
// pointers so that absence serializes as JSON null rather than being omitted.
type Offer struct {
	Platform      string  `json:"platform"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice"`
	Discount      *string `json:"discount"`
	Rating        *string `json:"rating"`
	Reviews       *string `json:"reviews"`
	Availability  string  `json:"availability"`
	DeliveryTime  string  `json:"deliveryTime"`
	BuyURL        string  `json:"buyUrl"`
}
