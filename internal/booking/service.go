// Package booking validates and applies booking submissions.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"pitchbook/internal/metrics"
	"pitchbook/internal/model"
	"pitchbook/internal/store"
)

var (
	// ErrIncompleteForm means name, email or the chosen hour is missing.
	ErrIncompleteForm = errors.New("fill name, email and select a time")
	// ErrSlotConflict means the slot is already taken for that court and date.
	ErrSlotConflict = errors.New("that slot is already booked")
	// ErrNotFound means no booking exists with the given id.
	ErrNotFound = errors.New("booking not found")
)

// Request is a candidate booking as submitted from the widget. StartHour
// is nil while no slot has been picked.
type Request struct {
	Name      string
	Email     string
	Court     int
	Date      string
	StartHour *int
}

// Service applies submissions and cancellations against the store.
type Service struct {
	store  *store.Store
	logger *zerolog.Logger
}

func NewService(st *store.Store, logger *zerolog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Submit validates req and appends the booking on success. Validation
// order is fixed: completeness first, then the conflict check. Failed
// submissions never touch the store.
func (s *Service) Submit(ctx context.Context, req Request) (model.Booking, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.StartHour == nil {
		metrics.IncBookingRejected("incomplete_form")
		return model.Booking{}, ErrIncompleteForm
	}

	hour := *req.StartHour
	if s.store.Has(req.Date, req.Court, hour) {
		metrics.IncBookingRejected("slot_conflict")
		return model.Booking{}, ErrSlotConflict
	}

	b := model.Booking{
		ID:        model.BookingID(req.Date, req.Court, hour),
		Name:      name,
		Email:     email,
		Court:     req.Court,
		Date:      req.Date,
		StartHour: hour,
	}
	if err := s.store.Append(ctx, b); err != nil {
		return model.Booking{}, fmt.Errorf("append booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Str("id", b.ID).
		Int("court", b.Court).
		Str("date", b.Date).
		Int("hour", b.StartHour).
		Msg("booking created")
	return b, nil
}

// Cancel removes a booking by id and re-persists the collection.
func (s *Service) Cancel(ctx context.Context, id string) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("remove booking: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	metrics.IncBookingCancelled()
	s.logger.Info().Str("id", id).Msg("booking cancelled")
	return nil
}
