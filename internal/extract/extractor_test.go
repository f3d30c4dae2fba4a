package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforge/pitchforge/internal/types"
)

func TestRegistry_MatchPriority(t *testing.T) {
	r := NewDefaultRegistry(&stubFetcher{}, &stubFetcher{}, testLogger())

	tests := []struct {
		domain string
		want   string
	}{
		{domain: "www.aliexpress.com", want: "AliExpress"},
		{domain: "aliexpress.us", want: "AliExpress"},
		{domain: "www.amazon.com", want: "Amazon"},
		{domain: "amazon.co.uk", want: "Amazon"},
		{domain: "www.ebay.com", want: "eBay"},
		{domain: "shop.example.com", want: "Generic"},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Match(tt.domain).Platform())
		})
	}
}

func TestUnsupported_Extract(t *testing.T) {
	e := NewUnsupported("Amazon")

	_, err := e.Extract(context.Background(), "https://www.amazon.com/dp/B000")

	var unsupported *types.UnsupportedPlatformError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Amazon", unsupported.Platform)
	assert.Equal(t, "Amazon scraping not implemented yet", err.Error())
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, "AliExpress", ProfileFor("www.aliexpress.com").Platform)
	assert.Equal(t, "Amazon", ProfileFor("www.amazon.de").Platform)
	assert.Equal(t, "eBay", ProfileFor("www.ebay.com").Platform)
	assert.Equal(t, "Generic", ProfileFor("unknown-shop.io").Platform)
}
