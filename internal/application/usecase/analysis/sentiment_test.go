package analysis

import (
	"testing"

	"github.com/kairos-app/backend/internal/domain/entity"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want entity.Sentiment
	}{
		{
			name: "positive text",
			text: "I had a great win today, love it",
			want: entity.SentimentPositive,
		},
		{
			name: "negative text",
			text: "I feel sad and lonely, total failure",
			want: entity.SentimentNegative,
		},
		{
			name: "empty text is neutral",
			text: "",
			want: entity.SentimentNeutral,
		},
		{
			name: "tie is neutral",
			text: "happy but sad",
			want: entity.SentimentNeutral,
		},
		{
			name: "no keywords is neutral",
			text: "went to the store and bought milk",
			want: entity.SentimentNeutral,
		},
		{
			name: "mixed case is lowered before matching",
			text: "GREAT day, so much JOY",
			want: entity.SentimentPositive,
		},
		{
			name: "substring matching counts embedded words",
			text: "feeling stressed about everything",
			want: entity.SentimentNegative,
		},
		{
			name: "repeated keyword counts each occurrence",
			text: "bad bad day but one win",
			want: entity.SentimentNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySentiment(tt.text); got != tt.want {
				t.Errorf("ClassifySentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
