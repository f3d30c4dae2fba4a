package types

import (
	"fmt"
	"time"
)

// Product is the canonical record returned to every caller regardless of
// which source produced it. It is built fresh on each scrape and never
// mutated after return.
type Product struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Brand            string         `json:"brand"`
	Price            Price          `json:"price"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Images           []Image        `json:"images"`
	Variants         []Variant      `json:"variants"`
	Specifications   []Spec         `json:"specifications"`
	Features         []string       `json:"features"`
	Reviews          ReviewSummary  `json:"reviews"`
	Availability     Availability   `json:"availability"`
	Category         string         `json:"category"`
	Tags             []string       `json:"tags"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	Source           Source         `json:"source"`
}

// Price holds current and original price. When a page exposes only one
// price both fields carry the same value, so DiscountPercentage stays 0.
type Price struct {
	Current            float64 `json:"current"`
	Original           float64 `json:"original"`
	Currency           string  `json:"currency"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// IsOnSale reports whether the current price undercuts the original.
func (p Price) IsOnSale() bool { return p.Current < p.Original }

// Image is a single product image. By convention the first image in the
// list is the primary one.
type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

// Variant is a purchasable variation of the product. Pages that expose no
// real variants get a single synthetic "default" entry.
type Variant struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Price         float64 `json:"price"`
	InStock       bool    `json:"in_stock"`
	StockQuantity int     `json:"stock_quantity"`
}

// Spec is a single specification key/value pair.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ReviewSummary aggregates review data for a product.
type ReviewSummary struct {
	AverageRating      float64        `json:"average_rating"`
	TotalReviews       int            `json:"total_reviews"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	RecentReviews      []Review       `json:"recent_reviews"`
}

// Review is a single customer review.
type Review struct {
	ID               string  `json:"id"`
	UserName         string  `json:"user_name"`
	Rating           float64 `json:"rating"`
	Title            string  `json:"title"`
	Comment          string  `json:"comment"`
	Date             string  `json:"date"`
	VerifiedPurchase bool    `json:"verified_purchase"`
}

// Availability describes stock and shipping for a product.
type Availability struct {
	InStock       bool         `json:"in_stock"`
	StockQuantity int          `json:"stock_quantity"`
	ShippingInfo  ShippingInfo `json:"shipping_info"`
}

// ShippingInfo holds shipping defaults, which differ per source site.
type ShippingInfo struct {
	FreeShipping      bool    `json:"free_shipping"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	ShippingCost      float64 `json:"shipping_cost"`
}

// Source records where and when the product data was obtained.
type Source struct {
	URL       string    `json:"url"`
	Platform  string    `json:"platform"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// NewProductID builds a display-only product identifier from a source tag.
// Uniqueness across calls is not guaranteed and not required.
func NewProductID(tag string) string {
	return fmt.Sprintf("%s_%d", tag, time.Now().UnixMilli())
}

// EmptyRatingDistribution returns a zeroed star→count mapping.
func EmptyRatingDistribution() map[string]int {
	return map[string]int{"5": 0, "4": 0, "3": 0, "2": 0, "1": 0}
}
