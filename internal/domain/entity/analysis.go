// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CognitiveAnalysis represents the daily per-user snapshot blending habit,
// task, finance and journal signals into bounded [0,100] scores. Exactly one
// snapshot exists per (user, day); recomputation overwrites it in place.
type CognitiveAnalysis struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	Day                     time.Time // Normalized to midnight, process-local zone
	MoodScore               float64
	StressLevel             float64
	ProductivityScore       float64
	FinancialStabilityScore float64
	ResilienceScore         float64
	Indicators              []string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewCognitiveAnalysis creates a new CognitiveAnalysis snapshot.
func NewCognitiveAnalysis(userID uuid.UUID, day time.Time) *CognitiveAnalysis {
	now := time.Now().UTC()

	return &CognitiveAnalysis{
		ID:        uuid.New(),
		UserID:    userID,
		Day:       day,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
