package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/pitchforge/pitchforge/internal/config"
)

// Browser renders pages in a headless Chromium via Rod. Each Fetch call
// acquires its own rendering session, which is torn down on every exit
// path — target sites are client-rendered SPAs and a leaked browser is a
// leaked process tree.
type Browser struct {
	cfg    *config.BrowserConfig
	logger *slog.Logger
}

// NewBrowser creates a headless browser fetcher.
func NewBrowser(cfg *config.Config, logger *slog.Logger) *Browser {
	return &Browser{
		cfg:    &cfg.Browser,
		logger: logger.With("component", "browser_fetcher"),
	}
}

// Fetch navigates to a URL and returns the fully rendered page content.
func (b *Browser) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	start := time.Now()

	l := launcher.New().
		Headless(b.cfg.Headless).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Set("disable-blink-features", "AutomationControlled")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
		l.Cleanup()
	}()

	var page *rod.Page
	if b.cfg.Stealth {
		page, err = stealth.Page(browser)
	} else {
		page, err = browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	}
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	if b.cfg.UserAgent != "" {
		err = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: b.cfg.UserAgent,
		})
		if err != nil {
			b.logger.Warn("failed to set user agent", "error", err)
		}
	}

	if err := page.Timeout(b.cfg.NavigationTimeout).Navigate(rawURL); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", rawURL, err)
	}

	// Wait for dynamic content to settle
	if err := page.Timeout(b.cfg.NavigationTimeout).WaitStable(b.cfg.StableWait); err != nil {
		b.logger.Warn("page stability timeout, continuing", "url", rawURL, "error", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("read rendered HTML of %s: %w", rawURL, err)
	}

	// Final URL after any redirects
	finalURL := rawURL
	if info, err := page.Info(); err == nil && info != nil {
		finalURL = info.URL
	}

	duration := time.Since(start)
	b.logger.Debug("browser render complete",
		"url", rawURL,
		"final_url", finalURL,
		"size", len(html),
		"duration", duration,
	)

	return NewPage([]byte(html), 200, finalURL, duration), nil
}

// Close is a no-op: the browser lifetime is scoped to each Fetch call.
func (b *Browser) Close() error {
	return nil
}

// Type returns the fetcher type identifier.
func (b *Browser) Type() string {
	return "browser"
}
