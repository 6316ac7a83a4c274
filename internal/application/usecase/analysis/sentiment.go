// Package analysis contains the cognitive analysis use cases.
package analysis

import (
	"strings"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// Fixed sentiment keyword lists. Matching is substring based, not
// word-boundary based, to keep scoring identical to existing snapshots
// ("stressed" counts via "stress", but so does "class" never matching).
var (
	negativeWords = []string{"sad", "bad", "angry", "depressed", "failure", "hate", "lose", "pain", "lonely", "stress"}
	positiveWords = []string{"happy", "good", "great", "win", "love", "success", "joy", "calm", "peace"}
)

// ClassifySentiment classifies free text as positive, negative or neutral
// by counting keyword occurrences. Ties, including empty text, are neutral.
func ClassifySentiment(text string) entity.Sentiment {
	lowered := strings.ToLower(text)

	negative := countOccurrences(lowered, negativeWords)
	positive := countOccurrences(lowered, positiveWords)

	switch {
	case negative > positive:
		return entity.SentimentNegative
	case positive > negative:
		return entity.SentimentPositive
	default:
		return entity.SentimentNeutral
	}
}

func countOccurrences(text string, words []string) int {
	count := 0
	for _, w := range words {
		count += strings.Count(text, w)
	}
	return count
}
