package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures_BulletLines(t *testing.T) {
	description := "Great product.\n• Noise cancellation\n- 24 hour battery\n* Water resistant\n1. Bluetooth 5.3"

	features := ExtractFeatures(description)

	assert.Equal(t, []string{
		"Noise cancellation",
		"24 hour battery",
		"Water resistant",
		"Bluetooth 5.3",
	}, features)
}

func TestExtractFeatures_SentenceFallback(t *testing.T) {
	description := "Amazing sound quality. Long battery life included. Ok. Ships worldwide in days!"

	features := ExtractFeatures(description)

	// "Ok" is under the 10-character floor and is skipped.
	assert.Equal(t, []string{
		"Amazing sound quality",
		"Long battery life included",
		"Ships worldwide in days",
	}, features)
}

func TestExtractFeatures_SentenceFallbackCap(t *testing.T) {
	description := strings.Repeat("This sentence is long enough. ", 8)

	features := ExtractFeatures(description)

	assert.Len(t, features, 5)
}

func TestExtractFeatures_BulletCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("• bullet feature line\n")
	}

	features := ExtractFeatures(b.String())

	assert.Len(t, features, 7)
}

func TestExtractFeatures_Empty(t *testing.T) {
	assert.Empty(t, ExtractFeatures(""))
}

func TestExtractFeatures_BulletsWinOverSentences(t *testing.T) {
	description := "A very long leading sentence that could be a feature.\n• Actual feature"

	features := ExtractFeatures(description)

	assert.Equal(t, []string{"Actual feature"}, features)
}
