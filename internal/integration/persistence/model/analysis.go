// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// CognitiveAnalysisModel represents the cognitive_analyses table in the
// database. The composite unique index enforces one snapshot per (user, day);
// recomputation updates in place.
type CognitiveAnalysisModel struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID                  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cognitive_analyses_user_day"`
	Day                     time.Time      `gorm:"type:date;not null;uniqueIndex:idx_cognitive_analyses_user_day"`
	MoodScore               float64        `gorm:"type:decimal(6,3);not null"`
	StressLevel             float64        `gorm:"type:decimal(6,3);not null"`
	ProductivityScore       float64        `gorm:"type:decimal(6,3);not null"`
	FinancialStabilityScore float64        `gorm:"type:decimal(6,3);not null"`
	ResilienceScore         float64        `gorm:"type:decimal(6,3);not null"`
	Indicators              pq.StringArray `gorm:"type:text[]"`
	CreatedAt               time.Time      `gorm:"not null"`
	UpdatedAt               time.Time      `gorm:"not null"`
}

// TableName returns the table name for the CognitiveAnalysisModel.
func (CognitiveAnalysisModel) TableName() string {
	return "cognitive_analyses"
}

// ToEntity converts a CognitiveAnalysisModel to a domain CognitiveAnalysis entity.
func (m *CognitiveAnalysisModel) ToEntity() *entity.CognitiveAnalysis {
	return &entity.CognitiveAnalysis{
		ID:                      m.ID,
		UserID:                  m.UserID,
		Day:                     m.Day,
		MoodScore:               m.MoodScore,
		StressLevel:             m.StressLevel,
		ProductivityScore:       m.ProductivityScore,
		FinancialStabilityScore: m.FinancialStabilityScore,
		ResilienceScore:         m.ResilienceScore,
		Indicators:              []string(m.Indicators),
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

// CognitiveAnalysisFromEntity creates a CognitiveAnalysisModel from a domain entity.
func CognitiveAnalysisFromEntity(analysis *entity.CognitiveAnalysis) *CognitiveAnalysisModel {
	return &CognitiveAnalysisModel{
		ID:                      analysis.ID,
		UserID:                  analysis.UserID,
		Day:                     analysis.Day,
		MoodScore:               analysis.MoodScore,
		StressLevel:             analysis.StressLevel,
		ProductivityScore:       analysis.ProductivityScore,
		FinancialStabilityScore: analysis.FinancialStabilityScore,
		ResilienceScore:         analysis.ResilienceScore,
		Indicators:              pq.StringArray(analysis.Indicators),
		CreatedAt:               analysis.CreatedAt,
		UpdatedAt:               analysis.UpdatedAt,
	}
}
