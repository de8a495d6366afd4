package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

func amt(v float64) *float64 { return &v }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRecordAndEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entries := []domain.RunEntry{
		{
			RunID: "run-1", Sequence: 1, FileName: "2023-01.pdf",
			Outcome: domain.OutcomeOK,
			Gross:   amt(2345.67), Deductions: amt(400), Net: amt(1945.67),
			StorageID: "file-1",
		},
		{
			RunID: "run-1", Sequence: 2, FileName: "invoice.pdf",
			Outcome: domain.OutcomeFormatError,
			Detail:  "file name does not match payslip pattern",
		},
	}
	for _, e := range entries {
		require.NoError(t, s.Record(ctx, e))
	}
	// A different run must not leak in.
	require.NoError(t, s.Record(ctx, domain.RunEntry{
		RunID: "run-2", Sequence: 1, FileName: "2023-02.pdf", Outcome: domain.OutcomeOK,
	}))

	got, err := s.Entries(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2023-01.pdf", got[0].FileName)
	assert.Equal(t, domain.OutcomeOK, got[0].Outcome)
	require.NotNil(t, got[0].Net)
	assert.InDelta(t, 1945.67, *got[0].Net, 1e-9)
	assert.Equal(t, "file-1", got[0].StorageID)

	assert.Equal(t, domain.OutcomeFormatError, got[1].Outcome)
	assert.Nil(t, got[1].Gross)
	assert.NotEmpty(t, got[1].Detail)
}

func TestStoreUnreconciled(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, domain.RunEntry{
		RunID: "run-1", Sequence: 1, FileName: "2023-01.pdf", Outcome: domain.OutcomeOK,
	}))
	require.NoError(t, s.Record(ctx, domain.RunEntry{
		RunID: "run-1", Sequence: 2, FileName: "2023-02.pdf",
		Outcome: domain.OutcomeStoredNotRecorded, StorageID: "file-2",
		Detail: "record creation failed: validation",
	}))

	got, err := s.Unreconciled(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2023-02.pdf", got[0].FileName)
	assert.Equal(t, "file-2", got[0].StorageID)
}

func TestStoreMigrationIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	require.NoError(t, s2.Record(context.Background(), domain.RunEntry{
		RunID: "run-1", Sequence: 1, FileName: "2023-01.pdf", Outcome: domain.OutcomeOK,
	}))
}
