package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbook/internal/model"
	"pitchbook/internal/storage"
)

// brokenStorage fails reads and writes on demand.
type brokenStorage struct {
	loadErr error
	saveErr error
}

func (b *brokenStorage) Load(context.Context) ([]model.Booking, error) {
	return nil, b.loadErr
}

func (b *brokenStorage) Save(context.Context, []model.Booking) error {
	return b.saveErr
}

func testLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

func booking(date string, court, hour int) model.Booking {
	return model.Booking{
		ID:        model.BookingID(date, court, hour),
		Name:      "A",
		Email:     "a@x.com",
		Court:     court,
		Date:      date,
		StartHour: hour,
	}
}

func TestAppendPersistsWholeCollection(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, booking("2024-06-10", 1, 9)))
	require.NoError(t, s.Append(ctx, booking("2024-06-10", 2, 10)))
	assert.Equal(t, 2, s.Len())

	// A fresh store over the same backend sees the same collection.
	reloaded := New(backend, testLogger())
	reloaded.Load(ctx)
	assert.Equal(t, s.Bookings(), reloaded.Bookings())
}

func TestLoadDegradesToEmpty(t *testing.T) {
	s := New(&brokenStorage{loadErr: errors.New("corrupt")}, testLogger())
	s.Load(context.Background())
	assert.Equal(t, 0, s.Len())
}

func TestAppendSaveFailureLeavesStoreUntouched(t *testing.T) {
	s := New(&brokenStorage{saveErr: errors.New("disk full")}, testLogger())
	err := s.Append(context.Background(), booking("2024-06-10", 1, 9))
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	s := New(storage.NewMemory(), testLogger())
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, booking("2024-06-10", 1, 9)))

	removed, err := s.Remove(ctx, "2024-06-10-1-9")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())

	removed, err = s.Remove(ctx, "2024-06-10-1-9")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestForDateSortedByHour(t *testing.T) {
	s := New(storage.NewMemory(), testLogger())
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, booking("2024-06-10", 1, 15)))
	require.NoError(t, s.Append(ctx, booking("2024-06-10", 2, 9)))
	require.NoError(t, s.Append(ctx, booking("2024-06-11", 1, 8)))

	day := s.ForDate("2024-06-10")
	require.Len(t, day, 2)
	assert.Equal(t, 9, day[0].StartHour)
	assert.Equal(t, 15, day[1].StartHour)
}

func TestHas(t *testing.T) {
	s := New(storage.NewMemory(), testLogger())
	require.NoError(t, s.Append(context.Background(), booking("2024-06-10", 1, 9)))

	assert.True(t, s.Has("2024-06-10", 1, 9))
	assert.False(t, s.Has("2024-06-10", 1, 10))
	assert.False(t, s.Has("2024-06-10", 2, 9))
	assert.False(t, s.Has("2024-06-11", 1, 9))
}

func TestReplace(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend, testLogger())
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, booking("2024-06-10", 1, 9)))

	next := []model.Booking{booking("2024-06-12", 3, 20)}
	require.NoError(t, s.Replace(ctx, next))
	assert.Equal(t, next, s.Bookings())
}
