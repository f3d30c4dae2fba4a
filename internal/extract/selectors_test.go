package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pitchforge/pitchforge/internal/fetcher"
)

func pageFromHTML(html string) *fetcher.Page {
	return fetcher.NewPage([]byte(html), 200, "https://example.com/p/1", time.Millisecond)
}

func TestFirstMatch_OrderWins(t *testing.T) {
	page := pageFromHTML(`<html><body>
		<h1>Plain Heading</h1>
		<div class="product-title-text">Selector Title</div>
	</body></html>`)

	got := FirstMatch(page, []Locator{
		CSS(".product-title-text"),
		CSS("h1"),
	}, "fallback")

	assert.Equal(t, "Selector Title", got)
}

func TestFirstMatch_SkipsEmptyCandidates(t *testing.T) {
	page := pageFromHTML(`<html><body>
		<div class="missing-everywhere"></div>
		<h1>  Trimmed Heading  </h1>
	</body></html>`)

	got := FirstMatch(page, []Locator{
		CSS(".not-present"),
		CSS(".missing-everywhere"),
		CSS("h1"),
	}, "fallback")

	assert.Equal(t, "Trimmed Heading", got)
}

func TestFirstMatch_Fallback(t *testing.T) {
	page := pageFromHTML(`<html><body><p>nothing useful</p></body></html>`)

	got := FirstMatch(page, []Locator{CSS(".absent")}, "Product Title")

	assert.Equal(t, "Product Title", got)
}

func TestFirstMatch_XPathMetaAttribute(t *testing.T) {
	page := pageFromHTML(`<html><head>
		<meta property="og:title" content="Meta Product Name">
	</head><body></body></html>`)

	got := FirstMatch(page, []Locator{
		CSS(".product-title-text"),
		XPath(`//meta[@property='og:title']`, "content"),
	}, "fallback")

	assert.Equal(t, "Meta Product Name", got)
}

func TestImageSources_FirstMatchingSelector(t *testing.T) {
	page := pageFromHTML(`<html><body>
		<div class="gallery"><img src="https://cdn.example.com/a.jpg"><img src="https://cdn.example.com/b.jpg"></div>
		<img class="other" src="https://cdn.example.com/c.jpg">
	</body></html>`)

	srcs := ImageSources(page, []string{".nope img", ".gallery img", "img.other"})

	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/b.jpg",
	}, srcs)
}

func TestImageSources_DataSrcFallback(t *testing.T) {
	page := pageFromHTML(`<html><body>
		<div class="gallery"><img data-src="https://cdn.example.com/lazy.jpg"></div>
	</body></html>`)

	srcs := ImageSources(page, []string{".gallery img"})

	assert.Equal(t, []string{"https://cdn.example.com/lazy.jpg"}, srcs)
}

func TestImageSources_NoMatches(t *testing.T) {
	page := pageFromHTML(`<html><body></body></html>`)

	assert.Nil(t, ImageSources(page, []string{".gallery img"}))
}
