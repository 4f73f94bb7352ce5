// Package storage persists the whole booking collection as a single
// snapshot under one fixed key. Every backend writes the full collection
// on each save; there is no incremental append.
package storage

import (
	"context"

	"pitchbook/internal/model"
)

// StorageKey is the single key every backend keeps the collection under.
const StorageKey = "futsal_bookings_v1"

// Storage reads and writes the full booking collection. Load returns
// (nil, nil) when nothing has been persisted yet; corrupt or unreadable
// state is reported as an error and handled by the store, which degrades
// to an empty collection.
type Storage interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Save(ctx context.Context, bookings []model.Booking) error
}
