package extract

import (
	"strings"

	"github.com/pitchforge/pitchforge/internal/types"
)

// Profile carries the per-site normalization defaults: the literal
// fallbacks substituted for absent fields, and the shipping/metadata
// constants that differ between platforms.
type Profile struct {
	Platform           string
	Tag                string
	Brand              string
	Category           string
	Tags               []string
	DefaultTitle       string
	DefaultDescription string
	DefaultRating      float64
	Shipping           types.ShippingInfo
}

var (
	// AliExpressProfile: client-rendered SPA, ships free from overseas.
	AliExpressProfile = Profile{
		Platform:           "AliExpress",
		Tag:                "aliexpress",
		Brand:              "AliExpress Seller",
		Category:           "Electronics",
		Tags:               []string{"aliexpress", "online", "shopping"},
		DefaultTitle:       "AliExpress Product",
		DefaultDescription: "Product description not available",
		Shipping: types.ShippingInfo{
			FreeShipping:      true,
			EstimatedDelivery: "7-15 business days",
			ShippingCost:      0,
		},
	}

	// AmazonProfile is only reachable through the bridge; the native
	// extractor for the platform is unimplemented.
	AmazonProfile = Profile{
		Platform:           "Amazon",
		Tag:                "amazon",
		Brand:              "Amazon Seller",
		Category:           "General",
		Tags:               []string{"amazon", "online", "shopping"},
		DefaultTitle:       "Amazon Product",
		DefaultDescription: "Product description not available",
		Shipping: types.ShippingInfo{
			FreeShipping:      true,
			EstimatedDelivery: "2-5 business days",
			ShippingCost:      0,
		},
	}

	// EbayProfile is only reachable through the bridge, like Amazon.
	EbayProfile = Profile{
		Platform:           "eBay",
		Tag:                "ebay",
		Brand:              "eBay Seller",
		Category:           "General",
		Tags:               []string{"ebay", "online", "shopping"},
		DefaultTitle:       "eBay Product",
		DefaultDescription: "Product description not available",
		Shipping: types.ShippingInfo{
			FreeShipping:      false,
			EstimatedDelivery: "5-10 business days",
			ShippingCost:      4.99,
		},
	}

	// GenericProfile covers every unrecognized site. No review markup is
	// parsed for generic pages, hence the flat 4.0 default rating.
	GenericProfile = Profile{
		Platform:           "Generic",
		Tag:                "generic",
		Brand:              "Unknown Brand",
		Category:           "General",
		Tags:               []string{"generic", "online", "shopping"},
		DefaultTitle:       "Product Title",
		DefaultDescription: "Description not found",
		DefaultRating:      4.0,
		Shipping: types.ShippingInfo{
			FreeShipping:      false,
			EstimatedDelivery: "5-7 business days",
			ShippingCost:      9.99,
		},
	}
)

// ProfileFor picks the site profile for a lowercased hostname, using the
// same substring priority as extractor dispatch.
func ProfileFor(domain string) Profile {
	switch {
	case strings.Contains(domain, "aliexpress"):
		return AliExpressProfile
	case strings.Contains(domain, "amazon"):
		return AmazonProfile
	case strings.Contains(domain, "ebay"):
		return EbayProfile
	default:
		return GenericProfile
	}
}
