package extract

import (
	"regexp"
	"strings"
)

const (
	maxFeatures         = 7
	maxSentenceFeatures = 5
)

var (
	bulletRe   = regexp.MustCompile(`^[•\-*]\s+`)
	numberedRe = regexp.MustCompile(`^\d+\.\s+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// ExtractFeatures derives a short bullet list of features from a free-form
// description. Lines starting with a bullet or numbered-list marker win;
// when there are none, sentences longer than 10 characters stand in for
// them (at most 5). The combined result is capped at 7 entries.
func ExtractFeatures(description string) []string {
	if description == "" {
		return nil
	}

	var features []string
	for _, line := range strings.Split(description, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case bulletRe.MatchString(trimmed):
			features = append(features, strings.TrimSpace(bulletRe.ReplaceAllString(trimmed, "")))
		case numberedRe.MatchString(trimmed):
			features = append(features, strings.TrimSpace(numberedRe.ReplaceAllString(trimmed, "")))
		}
	}

	if len(features) == 0 {
		for _, sentence := range sentenceRe.Split(description, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > 10 {
				features = append(features, sentence)
			}
			if len(features) == maxSentenceFeatures {
				break
			}
		}
	}

	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}
	return features
}
