package analysis

import (
	"math"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// ScoreInput carries the per-day signals the aggregator blends.
type ScoreInput struct {
	HabitRatio   float64 // 0-100, done habits over total habits
	TaskRatio    float64 // 0-100, completed todos over total todos
	FinancialDip bool    // True iff no credit transactions in the trailing 30 days
	Sentiment    entity.Sentiment
}

// Scores holds the five derived scores, each bounded to [0,100] and rounded
// to 3 decimal places.
type Scores struct {
	Mood               float64
	Productivity       float64
	FinancialStability float64
	Stress             float64
	Resilience         float64
}

// ComputeScores derives the daily scores from the raw signals. The
// coefficients are fixed product constants; changing any of them would make
// new snapshots inconsistent with stored ones.
func ComputeScores(input ScoreInput) Scores {
	var mood float64
	switch input.Sentiment {
	case entity.SentimentNegative:
		mood = 30
	case entity.SentimentPositive:
		mood = 85
	default:
		mood = 60
	}

	productivity := (input.HabitRatio + input.TaskRatio) / 2

	financialStability := 80.0
	if input.FinancialDip {
		financialStability = 40
	}

	stressBase := 10.0
	if input.Sentiment == entity.SentimentNegative {
		stressBase = 40
	}
	stress := (100-productivity)*0.4 + stressBase

	resilience := (mood + productivity + financialStability + (100 - stress)) / 4

	return Scores{
		Mood:               round3(mood),
		Productivity:       round3(productivity),
		FinancialStability: round3(financialStability),
		Stress:             round3(stress),
		Resilience:         round3(resilience),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
