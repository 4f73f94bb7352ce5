package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbook/internal/model"
)

func sampleBookings() []model.Booking {
	return []model.Booking{
		{ID: "2024-06-10-1-9", Name: "A", Email: "a@x.com", Court: 1, Date: "2024-06-10", StartHour: 9},
		{ID: "2024-06-10-2-10", Name: "B", Email: "b@x.com", Court: 2, Date: "2024-06-10", StartHour: 10},
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	f := NewFile(path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, sampleBookings()))
	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleBookings(), got)
}

func TestFileMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	got, err := f.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	f := NewFile(path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, nil))
	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
