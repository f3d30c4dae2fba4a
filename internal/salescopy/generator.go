// Package salescopy turns a canonical Product into templated marketing
// copy. Headline and call-to-action are drawn at random from fixed pools,
// so repeated calls for the same product may differ; description and
// benefits are deterministic.
package salescopy

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pitchforge/pitchforge/internal/types"
)

const discountHeadlineThreshold = 20

var headlineTemplates = []string{
	"%[1]s %[2]s - Premium Quality at Unbeatable Price",
	"Transform Your Experience with %[1]s %[2]s",
	"The %[1]s %[2]s That Everyone's Talking About",
	"Premium %[1]s %[2]s - Now Available",
	"Experience Excellence with %[1]s %[2]s",
}

var ctaTemplates = []string{
	"Order now and transform your experience today!",
	"Don't miss out - secure yours before they're gone!",
	"Join thousands of satisfied customers - order now!",
	"Experience the difference - click to order now!",
	"Get yours today and see why everyone loves this product!",
}

// Generate produces sales copy for a product. A nil product gets the
// generic fallback copy.
func Generate(p *types.Product) types.SalesCopy {
	if p == nil {
		return types.SalesCopy{
			Headline:    "Premium Product",
			Description: "Experience the difference with our premium product.",
			Benefits: []string{
				"High-quality materials",
				"Excellent customer service",
				"Great value for money",
			},
			CallToAction: "Order now and experience the difference!",
		}
	}

	return types.SalesCopy{
		Headline:     headline(p),
		Description:  description(p),
		Benefits:     benefits(p),
		CallToAction: callToAction(p),
	}
}

// headline picks a random template, except when a deep sale is on: a
// discount of 20% or more collapses to the sale-specific headline.
func headline(p *types.Product) string {
	if p.Price.IsOnSale() && p.Price.DiscountPercentage >= discountHeadlineThreshold {
		return fmt.Sprintf("%s %s - %s%% OFF Limited Time Offer!",
			p.Brand, p.Title, formatNumber(p.Price.DiscountPercentage))
	}
	tmpl := headlineTemplates[rand.Intn(len(headlineTemplates))]
	return fmt.Sprintf(tmpl, p.Brand, p.Title)
}

// description is deterministically templated from the first 3 features,
// brand, title, and review stats.
func description(p *types.Product) string {
	topFeatures := p.Features
	if len(topFeatures) > 3 {
		topFeatures = topFeatures[:3]
	}
	return fmt.Sprintf("Discover the %s %s - a premium product designed for excellence. "+
		"With %s, this product delivers outstanding performance and reliability. "+
		"Rated %s stars by %d satisfied customers, it's the perfect choice for those "+
		"who demand quality and innovation. Experience the difference that %s brings "+
		"to your daily routine.",
		p.Brand, p.Title,
		strings.Join(topFeatures, ", "),
		formatNumber(p.Reviews.AverageRating), p.Reviews.TotalReviews,
		p.Brand,
	)
}

// benefits returns exactly three entries: top feature, value proposition,
// and a shipping or guarantee line.
func benefits(p *types.Product) []string {
	topFeature := "High-quality materials"
	if len(p.Features) > 0 {
		topFeature = p.Features[0]
	}

	valueLine := "💰 Excellent Value - Premium quality at a competitive price"
	if p.Price.IsOnSale() {
		valueLine = fmt.Sprintf("💰 Amazing Value - Save %s%% on this premium product",
			formatNumber(p.Price.DiscountPercentage))
	}

	shippingLine := "🔒 Secure Purchase - 30-day money-back guarantee included"
	if p.Availability.ShippingInfo.FreeShipping {
		shippingLine = "🚚 Free Shipping - Get it delivered to your door at no extra cost"
	}

	return []string{
		fmt.Sprintf("✨ %s - Experience superior performance", topFeature),
		valueLine,
		shippingLine,
	}
}

// callToAction picks a random template, prefixed with stock and sale
// urgency when they apply.
func callToAction(p *types.Product) string {
	var urgency string
	if p.Availability.StockQuantity <= 10 {
		urgency = fmt.Sprintf("Only %d left in stock! ", p.Availability.StockQuantity)
	}
	if p.Price.IsOnSale() {
		urgency += "Limited time offer! "
	}
	return urgency + ctaTemplates[rand.Intn(len(ctaTemplates))]
}

// formatNumber renders a float the way the templates expect: no trailing
// zeros, no exponent.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
