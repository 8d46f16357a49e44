package repositories

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
)

// RateSnapshotReader defines read operations for the stored rate table.
type RateSnapshotReader interface {
	// FindLatestSnapshot returns the stored rate table, or apperrors.ErrNotFound when none was saved yet.
	FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error)
}

// RateSnapshotWriter defines write operations for the stored rate table.
type RateSnapshotWriter interface {
	// SaveSnapshot replaces the stored rate table with table.
	SaveSnapshot(ctx context.Context, table domain.RateTable) error
}

// RateSnapshotRepositoryFacade combines all rate snapshot repository interfaces
type RateSnapshotRepositoryFacade interface {
	RateSnapshotReader
	RateSnapshotWriter
}
