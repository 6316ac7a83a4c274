// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// AnalysisRepository defines the interface for cognitive analysis persistence.
type AnalysisRepository interface {
	// Upsert writes the snapshot for (user, day), overwriting any existing
	// snapshot for that day rather than creating a duplicate.
	Upsert(ctx context.Context, analysis *entity.CognitiveAnalysis) error

	// FindByUserAndDay retrieves the snapshot for one (user, day) pair.
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.CognitiveAnalysis, error)

	// FindByUserAndRange retrieves snapshots for a user within [start, end],
	// oldest first.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CognitiveAnalysis, error)
}
