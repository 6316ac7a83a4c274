package dto

import (
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// AnalysisResponse represents the daily cognitive analysis snapshot in API
// responses.
type AnalysisResponse struct {
	Day                     string    `json:"day"`
	MoodScore               float64   `json:"mood_score"`
	StressLevel             float64   `json:"stress_level"`
	ProductivityScore       float64   `json:"productivity_score"`
	FinancialStabilityScore float64   `json:"financial_stability_score"`
	ResilienceScore         float64   `json:"resilience_score"`
	Indicators              []string  `json:"indicators"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// AnalysisHistoryResponse represents the response for listing snapshots.
type AnalysisHistoryResponse struct {
	Snapshots []AnalysisResponse `json:"snapshots"`
}

// ToAnalysisHistoryResponse converts a list of snapshots to a DTO.
func ToAnalysisHistoryResponse(snapshots []*entity.CognitiveAnalysis) AnalysisHistoryResponse {
	responses := make([]AnalysisResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, ToAnalysisResponse(snapshot))
	}
	return AnalysisHistoryResponse{Snapshots: responses}
}

// ToAnalysisResponse converts a domain CognitiveAnalysis entity to a DTO.
func ToAnalysisResponse(analysis *entity.CognitiveAnalysis) AnalysisResponse {
	indicators := analysis.Indicators
	if indicators == nil {
		indicators = []string{}
	}

	return AnalysisResponse{
		Day:                     analysis.Day.Format("2006-01-02"),
		MoodScore:               analysis.MoodScore,
		StressLevel:             analysis.StressLevel,
		ProductivityScore:       analysis.ProductivityScore,
		FinancialStabilityScore: analysis.FinancialStabilityScore,
		ResilienceScore:         analysis.ResilienceScore,
		Indicators:              indicators,
		UpdatedAt:               analysis.UpdatedAt,
	}
}
