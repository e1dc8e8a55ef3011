package repository

import (
	"context"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
)

// TripStore defines the persistence operations for trip records.
type TripStore interface {
	// Save appends a trip record to the collection. At most one attempt,
	// no retry; callers decide whether a failure matters.
	Save(ctx context.Context, record *domain.TripRecord) error

	// GetByID retrieves a trip record by ID.
	GetByID(ctx context.Context, id string) (*domain.TripRecord, error)

	// GetRecent retrieves up to limit records, newest first.
	GetRecent(ctx context.Context, limit int64) ([]*domain.TripRecord, error)
}
