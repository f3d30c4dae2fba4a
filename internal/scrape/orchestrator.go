// Package scrape is the entry point of the extraction pipeline: given a
// product URL it picks a data source (external bridge preferred, native
// extractors otherwise) and returns the canonical Product record.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/extract"
	"github.com/pitchforge/pitchforge/internal/types"
)

// Bridge is the external scraper the orchestrator prefers when available.
type Bridge interface {
	// Available reports whether the external scraper can run right now.
	Available(ctx context.Context) bool

	// Invoke runs the external scraper and returns its raw fields.
	Invoke(ctx context.Context, rawURL string) (types.RawFields, error)
}

// Orchestrator dispatches scrape requests across the bridge and the
// registered site extractors.
type Orchestrator struct {
	registry *extract.Registry
	bridge   Bridge // nil when the bridge is disabled
	logger   *slog.Logger
}

// New creates an orchestrator. A nil bridge disables the bridge path
// entirely.
func New(registry *extract.Registry, bridge Bridge, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		bridge:   bridge,
		logger:   logger.With("component", "orchestrator"),
	}
}

// Scrape extracts the canonical product record for a URL.
//
// The URL is validated before any I/O. The bridge availability probe runs
// on every call — availability is allowed to change between requests. A
// bridge failure of any kind (unavailable, error, timeout, embedded error
// marker) falls through silently to the native extractor chain; that is
// the single designed fallback, and there are no retries anywhere else.
func (o *Orchestrator) Scrape(ctx context.Context, rawURL string) (*types.Product, error) {
	if err := config.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, types.ErrInvalidURL
	}
	domain := strings.ToLower(u.Hostname())

	if o.bridge != nil {
		if o.bridge.Available(ctx) {
			raw, err := o.bridge.Invoke(ctx, rawURL)
			switch {
			case err != nil:
				o.logger.Warn("bridge scraper failed, falling back", "url", rawURL, "error", err)
			case raw.Error != "":
				o.logger.Warn("bridge scraper reported error, falling back", "url", rawURL, "error", raw.Error)
			default:
				o.logger.Info("scraped via bridge", "url", rawURL, "domain", domain)
				return extract.Normalize(raw, rawURL, extract.ProfileFor(domain)), nil
			}
		} else {
			o.logger.Debug("bridge unavailable, using native extractors", "url", rawURL)
		}
	}

	ext := o.registry.Match(domain)
	o.logger.Info("scraping via native extractor", "url", rawURL, "platform", ext.Platform())

	product, err := ext.Extract(ctx, rawURL)
	if err != nil {
		return nil, &types.ScrapeError{URL: rawURL, Platform: ext.Platform(), Err: err}
	}
	return product, nil
}
