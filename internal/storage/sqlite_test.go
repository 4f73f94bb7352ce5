package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleBookings()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleBookings(), got)
}

func TestSQLiteMissingKey(t *testing.T) {
	s := newTestSQLite(t)
	got, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteOverwrite(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleBookings()))
	require.NoError(t, s.Save(ctx, sampleBookings()[:1]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "2024-06-10-1-9", got[0].ID)
}

func TestSQLiteCorruptValue(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv_store (key, value) VALUES (?, ?)", StorageKey, "{broken")
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.Error(t, err)
}
