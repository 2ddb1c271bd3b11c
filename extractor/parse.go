package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Text-fragment parsers for the extraction strategies. All four are pure and
// signal absence through their boolean return rather than an error: a price
// fragment without a currency marker or a rating of "7.2" is not a fault,
// the field is simply missing from that candidate.

var (
	// A price is a currency-marked digit run with optional thousand
	// separators. A bare number is never treated as a price.
	priceRe = regexp.MustCompile(`(?:₹|Rs\.?)\s*([0-9][0-9,]*)`)

	// First floating-point-looking substring, e.g. "4.2" in "4.2 out of 5".
	ratingRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

	// First digit-and-separator run, e.g. "1,204" in "1,204 ratings".
	reviewRe = regexp.MustCompile(`[0-9][0-9,]*`)
)

// ParsePrice locates a currency-marked numeric token in text and returns its
// integer value with separators stripped.
func ParsePrice(text string) (int, bool) {
	_, value, ok := parsePriceToken(text)
	return value, ok
}

// parsePriceToken returns both the canonical display form ("₹" + digits as
// matched) and the integer value of the first price token in text.
func parsePriceToken(text string) (display string, value int, ok bool) {
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return "", 0, false
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || v <= 0 {
		return "", 0, false
	}
	return "₹" + m[1], v, true
}

// ParseRating extracts the first decimal substring from text and accepts it
// only when it lies within [0.0, 5.0], inclusive on both ends. The result is
// formatted to exactly one decimal place.
func ParseRating(text string) (string, bool) {
	m := ratingRe.FindString(text)
	if m == "" {
		return "", false
	}
	r, err := strconv.ParseFloat(m, 64)
	if err != nil || r < 0.0 || r > 5.0 {
		return "", false
	}
	return fmt.Sprintf("%.1f", r), true
}

// ParseReviewCount extracts the first digit run from text and returns it as
// displayed, thousand separators kept. No numeric conversion happens here.
func ParseReviewCount(text string) (string, bool) {
	m := reviewRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// NormalizePlatformName trims text, removes everything except letters,
// digits and whitespace, and trims again. Names shorter than two characters
// are rejected.
func NormalizePlatformName(text string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
	cleaned = strings.TrimSpace(cleaned)
	if len([]rune(cleaned)) < 2 {
		return "", false
	}
	return cleaned, true
}
