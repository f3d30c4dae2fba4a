package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrInvalidURL        = errors.New("invalid URL")
	ErrMissingURL        = errors.New("url parameter is required")
	ErrBridgeUnavailable = errors.New("bridge scraper unavailable")
	ErrBridgeTimeout     = errors.New("bridge scraper timed out")
	ErrEmptyPage         = errors.New("empty page body")
)

// ScrapeError is the umbrella error surfaced to the HTTP boundary when a
// scrape fails for any unrecoverable reason.
type ScrapeError struct {
	URL      string
	Platform string
	Err      error
}

func (e *ScrapeError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("scrape failed for %s (%s): %v", e.URL, e.Platform, e.Err)
	}
	return fmt.Sprintf("scrape failed for %s: %v", e.URL, e.Err)
}

func (e *ScrapeError) Unwrap() error { return e.Err }

// ExtractionError wraps failures inside a single site extractor.
type ExtractionError struct {
	URL      string
	Platform string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error for %s (%s): %v", e.URL, e.Platform, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// UnsupportedPlatformError marks a platform the dispatcher recognizes but
// has no working extractor for.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s scraping not implemented yet", e.Platform)
}

// BridgeError wraps failures of the external scraper subprocess: non-zero
// exit, unparsable stdout, or the enforced wall-clock timeout. Stdout and
// stderr are carried for diagnostics.
type BridgeError struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *BridgeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("bridge scraper failed (exit %d): %v\nstderr: %s\nstdout: %s",
			e.ExitCode, e.Err, e.Stderr, e.Stdout)
	}
	return fmt.Sprintf("bridge scraper failed: %v\noutput: %s", e.Err, e.Stdout)
}

func (e *BridgeError) Unwrap() error { return e.Err }
