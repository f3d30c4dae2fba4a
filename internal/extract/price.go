package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRe locates the first contiguous run of digits with optional
// thousands commas and an optional decimal part.
var priceRe = regexp.MustCompile(`[\d,]+\.?\d*`)

// ParsePrice extracts a numeric price from a free-form currency string.
// Currency symbols, thousands separators, and surrounding text are
// ignored. No digit run at all yields 0.
func ParsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	match := priceRe.FindString(s)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}
