package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pitchforge/pitchforge/internal/fetcher"
	"github.com/pitchforge/pitchforge/internal/types"
)

// Extractor produces a canonical Product from a product page URL.
type Extractor interface {
	// Extract fetches or renders the page and returns the normalized
	// product record.
	Extract(ctx context.Context, rawURL string) (*types.Product, error)

	// Platform returns the platform name this extractor serves.
	Platform() string
}

// Matcher decides whether an extractor handles a given lowercased hostname.
type Matcher func(domain string) bool

// Contains matches any hostname containing the given substring.
func Contains(sub string) Matcher {
	return func(domain string) bool { return strings.Contains(domain, sub) }
}

type entry struct {
	match     Matcher
	extractor Extractor
}

// Registry maps domain predicates to extractor implementations, evaluated
// in registration order. Adding a site means registering it here; the
// orchestrator never changes.
type Registry struct {
	entries  []entry
	fallback Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a domain-matched extractor. Earlier registrations win.
func (r *Registry) Register(m Matcher, e Extractor) {
	r.entries = append(r.entries, entry{match: m, extractor: e})
}

// SetFallback sets the extractor used when no predicate matches.
func (r *Registry) SetFallback(e Extractor) {
	r.fallback = e
}

// Match returns the extractor for a lowercased hostname.
func (r *Registry) Match(domain string) Extractor {
	for _, e := range r.entries {
		if e.match(domain) {
			return e.extractor
		}
	}
	return r.fallback
}

// NewDefaultRegistry wires the supported platforms in their fixed priority:
// aliexpress, then amazon, then ebay, with the generic extractor as the
// catch-all.
func NewDefaultRegistry(browser fetcher.Fetcher, static fetcher.Fetcher, logger *slog.Logger) *Registry {
	r := NewRegistry()
	r.Register(Contains("aliexpress"), NewAliExpress(browser, logger))
	r.Register(Contains("amazon"), NewUnsupported("Amazon"))
	r.Register(Contains("ebay"), NewUnsupported("eBay"))
	r.SetFallback(NewGeneric(static, logger))
	return r
}
