package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforge/pitchforge/internal/types"
)

const genericFixture = `<html><head>
<meta name="description" content="A handy kitchen scale for precise measurements.">
</head><body>
<h1>Digital Kitchen Scale</h1>
<span class="price">$24.99</span>
<img src="https://shop.example.com/img/scale-front.jpg">
<img src="/img/relative.jpg">
<img src="https://shop.example.com/img/scale-side.jpg">
</body></html>`

func TestGeneric_Extract(t *testing.T) {
	f := &stubFetcher{html: genericFixture}
	e := NewGeneric(f, testLogger())

	p, err := e.Extract(context.Background(), "https://shop.example.com/p/scale")
	require.NoError(t, err)

	assert.Equal(t, "Digital Kitchen Scale", p.Title)
	assert.Equal(t, 24.99, p.Price.Current)
	assert.Equal(t, "A handy kitchen scale for precise measurements.", p.Description)
	assert.Equal(t, "Unknown Brand", p.Brand)
	assert.Equal(t, "Generic", p.Source.Platform)
	assert.Equal(t, 4.0, p.Reviews.AverageRating)

	// Relative sources are dropped during normalization.
	require.Len(t, p.Images, 2)
	assert.Equal(t, "https://shop.example.com/img/scale-front.jpg", p.Images[0].URL)
}

func TestGeneric_ExtractBarePageUsesDefaults(t *testing.T) {
	e := NewGeneric(&stubFetcher{html: "<html><body><p>hi</p></body></html>"}, testLogger())

	p, err := e.Extract(context.Background(), "https://shop.example.com/p/1")
	require.NoError(t, err)

	assert.Equal(t, "Product Title", p.Title)
	assert.Equal(t, "Description not found", p.Description)
	assert.Zero(t, p.Price.Current)
	assert.Equal(t, 9.99, p.Availability.ShippingInfo.ShippingCost)
}

func TestGeneric_ImageCap(t *testing.T) {
	html := "<html><body>"
	for i := 0; i < 9; i++ {
		html += `<img src="https://shop.example.com/img/x.jpg">`
	}
	html += "</body></html>"

	e := NewGeneric(&stubFetcher{html: html}, testLogger())

	p, err := e.Extract(context.Background(), "https://shop.example.com/p/1")
	require.NoError(t, err)
	assert.Len(t, p.Images, 5)
}

func TestGeneric_ExtractFetchError(t *testing.T) {
	e := NewGeneric(&stubFetcher{err: errors.New("connection refused")}, testLogger())

	_, err := e.Extract(context.Background(), "https://shop.example.com/p/1")

	var extErr *types.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "Generic", extErr.Platform)
}
