package analysis

import (
	"testing"

	"github.com/kairos-app/backend/internal/domain/entity"
)

func TestComputeScores(t *testing.T) {
	tests := []struct {
		name  string
		input ScoreInput
		want  Scores
	}{
		{
			name: "perfect day",
			input: ScoreInput{
				HabitRatio:   100,
				TaskRatio:    100,
				FinancialDip: false,
				Sentiment:    entity.SentimentPositive,
			},
			want: Scores{
				Mood:               85,
				Productivity:       100,
				FinancialStability: 80,
				Stress:             10,
				Resilience:         88.75,
			},
		},
		{
			name: "empty day is neutral",
			input: ScoreInput{
				HabitRatio:   0,
				TaskRatio:    0,
				FinancialDip: false,
				Sentiment:    entity.SentimentNeutral,
			},
			want: Scores{
				Mood:               60,
				Productivity:       0,
				FinancialStability: 80,
				Stress:             50,
				Resilience:         47.5,
			},
		},
		{
			name: "bad day compounds",
			input: ScoreInput{
				HabitRatio:   0,
				TaskRatio:    0,
				FinancialDip: true,
				Sentiment:    entity.SentimentNegative,
			},
			want: Scores{
				Mood:               30,
				Productivity:       0,
				FinancialStability: 40,
				Stress:             80,
				Resilience:         22.5,
			},
		},
		{
			name: "uneven ratios average",
			input: ScoreInput{
				HabitRatio:   50,
				TaskRatio:    100,
				FinancialDip: false,
				Sentiment:    entity.SentimentNeutral,
			},
			want: Scores{
				Mood:               60,
				Productivity:       75,
				FinancialStability: 80,
				Stress:             20,
				Resilience:         73.75,
			},
		},
		{
			name: "repeating decimals round to 3 places",
			input: ScoreInput{
				HabitRatio:   100.0 / 3,
				TaskRatio:    0,
				FinancialDip: false,
				Sentiment:    entity.SentimentNeutral,
			},
			want: Scores{
				Mood:               60,
				Productivity:       16.667,
				FinancialStability: 80,
				Stress:             43.333,
				Resilience:         53.333,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScores(tt.input)
			if got != tt.want {
				t.Errorf("ComputeScores() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeScoresBounded(t *testing.T) {
	sentiments := []entity.Sentiment{entity.SentimentPositive, entity.SentimentNeutral, entity.SentimentNegative}
	ratios := []float64{0, 25, 50, 75, 100}

	for _, s := range sentiments {
		for _, habitRatio := range ratios {
			for _, taskRatio := range ratios {
				for _, dip := range []bool{false, true} {
					got := ComputeScores(ScoreInput{
						HabitRatio:   habitRatio,
						TaskRatio:    taskRatio,
						FinancialDip: dip,
						Sentiment:    s,
					})

					for name, v := range map[string]float64{
						"mood":               got.Mood,
						"productivity":       got.Productivity,
						"financialStability": got.FinancialStability,
						"stress":             got.Stress,
						"resilience":         got.Resilience,
					} {
						if v < 0 || v > 100 {
							t.Errorf("%s = %v out of [0,100] for input {%v %v %v %s}", name, v, habitRatio, taskRatio, dip, s)
						}
					}
				}
			}
		}
	}
}
