package types

// RawFields is the un-normalized, site-specific extraction output shared by
// every extractor and by the external bridge. The JSON tags match the
// bridge's stdout schema: the external process prints exactly this record
// (or {"error": "..."}) as a single line.
type RawFields struct {
	Title         string      `json:"title"`
	Price         string      `json:"price"`
	Images        []string    `json:"images"`
	Description   string      `json:"description"`
	Reviews       []RawReview `json:"reviews"`
	AverageRating string      `json:"averageRating"`
	TotalReviews  string      `json:"totalReviews"`

	// Error is the external process's own failure signaling convention.
	// A non-empty value is treated like a transport-level bridge failure.
	Error string `json:"error,omitempty"`
}

// RawReview is a single review as extracted from a page, all fields still
// free-form strings.
type RawReview struct {
	Rating string `json:"rating"`
	Text   string `json:"text"`
	Author string `json:"author"`
}
