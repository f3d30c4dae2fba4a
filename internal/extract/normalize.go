package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pitchforge/pitchforge/internal/types"
)

const shortDescriptionLen = 150

var (
	leadingFloatRe = regexp.MustCompile(`\d+(\.\d+)?`)
	digitsRe       = regexp.MustCompile(`\d`)
)

// Normalize converts raw, site-specific extraction output into the
// canonical Product record. Absent fields take the profile's literal
// defaults; the raw price string feeds both current and original price, so
// the discount percentage stays zero unless an extractor independently
// finds one (none currently do).
func Normalize(raw types.RawFields, sourceURL string, profile Profile) *types.Product {
	now := time.Now()

	title := raw.Title
	if title == "" {
		title = profile.DefaultTitle
	}
	description := raw.Description
	if description == "" {
		description = profile.DefaultDescription
	}
	price := ParsePrice(raw.Price)

	return &types.Product{
		ID:               types.NewProductID(profile.Tag),
		Title:            title,
		Brand:            profile.Brand,
		Price: types.Price{
			Current:            price,
			Original:           price,
			Currency:           "USD",
			DiscountPercentage: 0,
		},
		Description:      description,
		ShortDescription: shortDescription(description),
		Images:           normalizeImages(raw.Images, title),
		Variants: []types.Variant{
			{
				ID:            "default",
				Name:          "Default",
				Color:         "#000000",
				Price:         price,
				InStock:       true,
				StockQuantity: 100,
			},
		},
		Specifications: []types.Spec{},
		Features:       ExtractFeatures(description),
		Reviews: types.ReviewSummary{
			AverageRating:      normalizeRating(raw.AverageRating, profile.DefaultRating),
			TotalReviews:       parseCount(raw.TotalReviews),
			RatingDistribution: types.EmptyRatingDistribution(),
			RecentReviews:      normalizeReviews(raw.Reviews, now),
		},
		Availability: types.Availability{
			InStock:       true,
			StockQuantity: 100,
			ShippingInfo:  profile.Shipping,
		},
		Category:  profile.Category,
		Tags:      profile.Tags,
		CreatedAt: now,
		UpdatedAt: now,
		Source: types.Source{
			URL:       sourceURL,
			Platform:  profile.Platform,
			ScrapedAt: now,
		},
	}
}

// shortDescription returns the first 150 characters of a description,
// ellipsis-terminated.
func shortDescription(description string) string {
	runes := []rune(description)
	if len(runes) > shortDescriptionLen {
		runes = runes[:shortDescriptionLen]
	}
	return string(runes) + "..."
}

// normalizeImages keeps only absolute (http-prefixed) sources and marks the
// first image as primary.
func normalizeImages(srcs []string, title string) []types.Image {
	images := make([]types.Image, 0, len(srcs))
	for _, src := range srcs {
		if !strings.HasPrefix(src, "http") {
			continue
		}
		images = append(images, types.Image{
			URL:       src,
			Alt:       fmt.Sprintf("%s - Image %d", title, len(images)+1),
			IsPrimary: len(images) == 0,
		})
	}
	return images
}

// normalizeRating parses a free-form rating string ("4.8", "4.8 stars",
// "No rating"). Unparsable input falls back to the profile default.
func normalizeRating(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	match := leadingFloatRe.FindString(s)
	if match == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return fallback
	}
	return value
}

// parseCount strips non-digit characters ("1,024 Reviews") and parses the
// remainder as an integer. Unparsable values default to 0.
func parseCount(s string) int {
	digits := strings.Join(digitsRe.FindAllString(s, -1), "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// normalizeReviews converts raw page reviews into canonical entries,
// capped at 5.
func normalizeReviews(raws []types.RawReview, now time.Time) []types.Review {
	if len(raws) > 5 {
		raws = raws[:5]
	}
	reviews := make([]types.Review, 0, len(raws))
	for i, r := range raws {
		rating := normalizeRating(r.Rating, 0)
		if rating == 0 {
			rating = 5
		}
		userName := r.Author
		if userName == "" {
			userName = "Anonymous"
		}
		reviews = append(reviews, types.Review{
			ID:               fmt.Sprintf("review_%d", i),
			UserName:         userName,
			Rating:           rating,
			Title:            fmt.Sprintf("Review %d", i+1),
			Comment:          r.Text,
			Date:             now.Format("2006-01-02"),
			VerifiedPurchase: true,
		})
	}
	return reviews
}
