// Package store persists discovery runs and their reconciled records.
package store

import (
	"context"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	City   string          `json:"city,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for the discovery pipeline.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, city, state string) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, summary *model.RunSummary) error
	FailRun(ctx context.Context, runID string) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Records
	SaveRecords(ctx context.Context, runID string, records []model.Reconciled) error
	ListRecords(ctx context.Context, runID string) ([]model.Reconciled, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
