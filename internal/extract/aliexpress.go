package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pitchforge/pitchforge/internal/fetcher"
	"github.com/pitchforge/pitchforge/internal/types"
)

// AliExpress selector candidates, tried in order per field. The site is a
// client-rendered SPA and rearranges its markup regularly, so every field
// carries a tail of older selectors plus a meta-tag XPath fallback.
var (
	aliTitleLocators = []Locator{
		CSS(`[data-pl="product-title"]`),
		CSS(".product-title-text"),
		CSS("h1"),
		CSS(".product-title"),
		CSS(`[data-testid="product-title"]`),
		CSS(".title-text"),
		CSS(".product-name"),
		XPath(`//meta[@property='og:title']`, "content"),
	}
	aliPriceLocators = []Locator{
		CSS(".notranslate"),
		CSS(`[data-pl="product-price"]`),
		CSS(".price-current"),
		CSS(".price"),
		CSS(".product-price"),
		CSS(`[data-testid="price"]`),
		CSS(".price-value"),
		XPath(`//meta[@property='og:price:amount']`, "content"),
	}
	aliDescriptionLocators = []Locator{
		CSS(".product-description"),
		CSS(`[data-pl="product-description"]`),
		CSS(".product-detail-description"),
		CSS(".description"),
		CSS(".product-details"),
		CSS(".product-info"),
		XPath(`//meta[@name='description']`, "content"),
	}
	aliRatingLocators = []Locator{
		CSS(".overview-rating-average"),
		CSS(".rating-average"),
		CSS(`[data-pl="rating-average"]`),
	}
	aliReviewCountLocators = []Locator{
		CSS(".overview-rating-total"),
		CSS(".rating-total"),
		CSS(`[data-pl="rating-total"]`),
	}
	aliImageSelectors = []string{
		".images-view-item img",
		".product-image img",
		".gallery-image img",
		".product-gallery img",
		`img[src*="alicdn"]`,
		`img[alt*="product"]`,
	}
)

// AliExpress extracts product data from rendered AliExpress pages. The
// renderer session is scoped to each Extract call and torn down by the
// browser fetcher on every exit path.
type AliExpress struct {
	renderer fetcher.Fetcher
	logger   *slog.Logger
}

// NewAliExpress creates the AliExpress extractor on top of a browser
// renderer.
func NewAliExpress(renderer fetcher.Fetcher, logger *slog.Logger) *AliExpress {
	return &AliExpress{
		renderer: renderer,
		logger:   logger.With("component", "aliexpress_extractor"),
	}
}

// Platform returns the platform name.
func (e *AliExpress) Platform() string { return "AliExpress" }

// Extract renders the page and normalizes the extracted fields.
func (e *AliExpress) Extract(ctx context.Context, rawURL string) (*types.Product, error) {
	page, err := e.renderer.Fetch(ctx, rawURL)
	if err != nil {
		return nil, &types.ExtractionError{URL: rawURL, Platform: e.Platform(), Err: err}
	}

	raw, err := e.extractRaw(page)
	if err != nil {
		return nil, &types.ExtractionError{URL: rawURL, Platform: e.Platform(), Err: err}
	}

	e.logger.Debug("extraction complete",
		"url", rawURL,
		"title", raw.Title,
		"images", len(raw.Images),
		"reviews", len(raw.Reviews),
	)

	return Normalize(raw, rawURL, AliExpressProfile), nil
}

// extractRaw applies the candidate selectors against the rendered page.
// Unmatched fields take fixed literal defaults rather than failing.
func (e *AliExpress) extractRaw(page *fetcher.Page) (types.RawFields, error) {
	doc, err := page.Document()
	if err != nil {
		return types.RawFields{}, err
	}

	raw := types.RawFields{
		Title:         FirstMatch(page, aliTitleLocators, "AliExpress Product"),
		Price:         FirstMatch(page, aliPriceLocators, "$0.00"),
		Description:   FirstMatch(page, aliDescriptionLocators, "Product description not available"),
		Images:        ImageSources(page, aliImageSelectors),
		AverageRating: FirstMatch(page, aliRatingLocators, "No rating"),
		TotalReviews:  FirstMatch(page, aliReviewCountLocators, "0"),
	}

	doc.Find(".review-item, .feedback-item").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i == 5 {
			return false
		}
		raw.Reviews = append(raw.Reviews, types.RawReview{
			Rating: textOr(s.Find(".star-view, .rating").First(), "No rating"),
			Text:   textOr(s.Find(".review-content, .feedback-content").First(), "No review text"),
			Author: textOr(s.Find(".user-name, .buyer-name").First(), "Anonymous"),
		})
		return true
	})

	return raw, nil
}

// textOr returns the trimmed text of a selection, or the fallback when the
// selection is empty.
func textOr(s *goquery.Selection, fallback string) string {
	text := strings.TrimSpace(s.Text())
	if text == "" {
		return fallback
	}
	return text
}
