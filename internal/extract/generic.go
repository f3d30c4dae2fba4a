package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pitchforge/pitchforge/internal/fetcher"
	"github.com/pitchforge/pitchforge/internal/types"
)

const maxGenericImages = 5

// Generic selector candidates for common product page markup.
var (
	genericTitleLocators = []Locator{
		CSS("h1"),
		CSS(`[data-testid="product-title"]`),
		CSS(".product-title"),
		XPath(`//meta[@property='og:title']`, "content"),
	}
	genericPriceLocators = []Locator{
		CSS(`[data-testid="price"]`),
		CSS(".price"),
		CSS(".product-price"),
		XPath(`//meta[@property='og:price:amount']`, "content"),
	}
	genericDescriptionLocators = []Locator{
		CSS(`[data-testid="product-description"]`),
		CSS(".product-description"),
		CSS(".description"),
		XPath(`//meta[@name='description']`, "content"),
	}
)

// Generic extracts product data from arbitrary sites by fetching the page
// as static markup, without script execution. No review markup is parsed;
// the profile supplies broad defaults instead.
type Generic struct {
	fetcher fetcher.Fetcher
	logger  *slog.Logger
}

// NewGeneric creates the generic extractor on top of a static fetcher.
func NewGeneric(f fetcher.Fetcher, logger *slog.Logger) *Generic {
	return &Generic{
		fetcher: f,
		logger:  logger.With("component", "generic_extractor"),
	}
}

// Platform returns the platform name.
func (e *Generic) Platform() string { return "Generic" }

// Extract fetches the page and normalizes the extracted fields.
func (e *Generic) Extract(ctx context.Context, rawURL string) (*types.Product, error) {
	page, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, &types.ExtractionError{URL: rawURL, Platform: e.Platform(), Err: err}
	}

	doc, err := page.Document()
	if err != nil {
		return nil, &types.ExtractionError{URL: rawURL, Platform: e.Platform(), Err: err}
	}

	raw := types.RawFields{
		Title:       FirstMatch(page, genericTitleLocators, "Product Title"),
		Price:       FirstMatch(page, genericPriceLocators, "Price not found"),
		Description: FirstMatch(page, genericDescriptionLocators, "Description not found"),
		Images:      collectImages(doc),
	}

	e.logger.Debug("extraction complete", "url", rawURL, "title", raw.Title, "images", len(raw.Images))

	return Normalize(raw, rawURL, GenericProfile), nil
}

// collectImages gathers every <img> with an absolute source, capped at 5.
func collectImages(doc *goquery.Document) []string {
	var srcs []string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			src, _ = s.Attr("data-src")
		}
		if strings.HasPrefix(src, "http") {
			srcs = append(srcs, src)
		}
		return len(srcs) < maxGenericImages
	})
	return srcs
}
