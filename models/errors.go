package models

import "fmt"

// Error codes used in API responses and internal error handling.
//
// Missing input and "no offers" are expected domain outcomes; only fetch
// faults and extraction faults are genuine system errors.
const (
	ErrCodeMissingInput = "MISSING_INPUT"
	ErrCodeFetchFailed  = "FETCH_FAILED"
	ErrCodeFetchTimeout = "FETCH_TIMEOUT"
	ErrCodeNoOffers     = "NO_OFFERS_FOUND"
	ErrCodeExtraction   = "EXTRACTION_FAULT"
	ErrCodeBrowserCrash = "BROWSER_CRASH"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// Details returns the wrapped fault message for API diagnostics, or the
// ScrapeError's own message when nothing is wrapped.
func (e *ScrapeError) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}
