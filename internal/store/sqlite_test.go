package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinal-labs/dinescout/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testRecords() []model.Reconciled {
	return []model.Reconciled{
		{
			Candidate:   model.Candidate{Name: "Morcilla", Description: "Spanish small plates.", Source: "a"},
			Validated:   true,
			SourceCount: 2,
			Enrichment: &model.Enrichment{
				VerificationStatus: model.VerificationVerified,
				BusinessStatus:     model.StatusOperational,
				Rating:             4.7,
			},
		},
		{
			Candidate:   model.Candidate{Name: "Spoon", Description: "Seasonal American.", Source: "b"},
			SourceCount: 1,
		},
	}
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "Pittsburgh", "PA")
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pittsburgh", got.City)
	assert.Equal(t, "PA", got.State)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Nil(t, got.Summary)

	summary := &model.RunSummary{Candidates: 10, Reconciled: 5, Validated: 3, Verified: 4}
	require.NoError(t, s.CompleteRun(ctx, run.ID, summary))

	got, err = s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 5, got.Summary.Reconciled)
	assert.Equal(t, 3, got.Summary.Validated)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "Pittsburgh", "PA")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
}

func TestSQLiteStore_UnknownRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetRun(ctx, "nope")
	assert.Error(t, err)

	assert.Error(t, s.CompleteRun(ctx, "nope", &model.RunSummary{}))
	assert.Error(t, s.FailRun(ctx, "nope"))
}

func TestSQLiteStore_SaveAndListRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "Pittsburgh", "PA")
	require.NoError(t, err)

	records := testRecords()
	require.NoError(t, s.SaveRecords(ctx, run.ID, records))

	got, err := s.ListRecords(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Morcilla", got[0].Name)
	assert.Equal(t, "Spoon", got[1].Name)
	require.NotNil(t, got[0].Enrichment)
	assert.Equal(t, model.VerificationVerified, got[0].Enrichment.VerificationStatus)
	assert.Nil(t, got[1].Enrichment)
}

func TestSQLiteStore_SaveRecordsReplacesPrevious(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "Pittsburgh", "PA")
	require.NoError(t, err)

	require.NoError(t, s.SaveRecords(ctx, run.ID, testRecords()))
	require.NoError(t, s.SaveRecords(ctx, run.ID, testRecords()[:1]))

	got, err := s.ListRecords(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Morcilla", got[0].Name)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pit, err := s.CreateRun(ctx, "Pittsburgh", "PA")
	require.NoError(t, err)
	cle, err := s.CreateRun(ctx, "Cleveland", "OH")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, cle.ID))

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	failed, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, cle.ID, failed[0].ID)

	byCity, err := s.ListRuns(ctx, RunFilter{City: "Pittsburgh"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, pit.ID, byCity[0].ID)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
