// Package store holds the booking collection for the process lifetime and
// mirrors every mutation to persistent storage.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"pitchbook/internal/model"
	"pitchbook/internal/storage"
)

// Store is the single source of truth for bookings. It is an explicit
// state container: the storage backend is injected, and Load, Append,
// Replace and Remove are the only mutation entry points. Each mutation
// persists the full collection before it becomes visible, so the mirror
// never runs ahead of storage.
type Store struct {
	mu       sync.RWMutex
	bookings []model.Booking
	backend  storage.Storage
	logger   *zerolog.Logger
}

func New(backend storage.Storage, logger *zerolog.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// Load reads the persisted collection. Missing or corrupt state is never
// fatal: the store starts empty and logs the reason.
func (s *Store) Load(ctx context.Context) {
	bookings, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("persisted bookings unreadable, starting empty")
		bookings = nil
	}
	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
}

// Append adds one booking and persists the whole collection. On a persist
// failure the in-memory collection is left untouched.
func (s *Store) Append(ctx context.Context, b model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Booking, 0, len(s.bookings)+1)
	next = append(next, s.bookings...)
	next = append(next, b)
	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	return nil
}

// Replace swaps in a whole new collection and persists it.
func (s *Store) Replace(ctx context.Context, bookings []model.Booking) error {
	next := make([]model.Booking, len(bookings))
	copy(next, bookings)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	return nil
}

// Remove deletes the booking with the given id and persists the remainder.
// Reports whether a booking was removed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Booking, 0, len(s.bookings))
	removed := false
	for _, b := range s.bookings {
		if b.ID == id {
			removed = true
			continue
		}
		next = append(next, b)
	}
	if !removed {
		return false, nil
	}
	if err := s.backend.Save(ctx, next); err != nil {
		return false, fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	return true, nil
}

// Bookings returns a snapshot of the current collection.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ForDate returns the date's bookings sorted by start hour.
func (s *Store) ForDate(date string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartHour < out[j].StartHour })
	return out
}

// Has reports whether a booking exists for the exact slot.
func (s *Store) Has(date string, court, startHour int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.Date == date && b.Court == court && b.StartHour == startHour {
			return true
		}
	}
	return false
}

// Len returns the number of bookings held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
