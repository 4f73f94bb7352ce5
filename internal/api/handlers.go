package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pitchbook/internal/booking"
	"pitchbook/internal/export"
	"pitchbook/internal/metrics"
	"pitchbook/internal/model"
	"pitchbook/internal/schedule"
)

// ConfigResponse tells the page how to draw the date strip and the grid.
type ConfigResponse struct {
	OpenHour  int `json:"openHour"`
	CloseHour int `json:"closeHour"`
	Courts    int `json:"courts"`
	DaysAhead int `json:"daysAhead"`
}

// AvailabilityResponse is the per-hour status list for one court and date.
type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Court int             `json:"court"`
	Slots []schedule.Slot `json:"slots"`
}

// BookingRequest is the submission body for POST /api/bookings.
// StartHour stays nil when the page submits without a selected slot.
type BookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Court     int    `json:"court"`
	Date      string `json:"date"`
	StartHour *int   `json:"startHour"`
}

// BookingResponse wraps a created booking with the confirmation text shown
// by the page. The email line is display copy only; nothing is sent.
type BookingResponse struct {
	Booking model.Booking `json:"booking"`
	Message string        `json:"message"`
}

// DayBookingsResponse lists a date's bookings sorted by hour.
type DayBookingsResponse struct {
	Date     string          `json:"date"`
	Bookings []model.Booking `json:"bookings"`
}

// GET /api/config
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("config")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	writeJSON(w, http.StatusOK, ConfigResponse{
		OpenHour:  s.window.OpenHour,
		CloseHour: s.window.CloseHour,
		Courts:    s.courts,
		DaysAhead: s.daysAhead,
	})
}

// GET /api/availability?date=YYYY-MM-DD&court=N
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	date, err := s.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	court, err := s.parseCourt(r.URL.Query().Get("court"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slots := schedule.Resolve(date, court, s.store.Bookings(), s.now(), s.window)
	writeJSON(w, http.StatusOK, AvailabilityResponse{
		Date:  model.DateKey(date),
		Court: court,
		Slots: slots,
	})
}

// GET /api/bookings?date=YYYY-MM-DD and POST /api/bookings
func (s *Server) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET or POST")
	}
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_list")
	date, err := s.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	key := model.DateKey(date)
	writeJSON(w, http.StatusOK, DayBookingsResponse{
		Date:     key,
		Bookings: s.store.ForDate(key),
	})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_create")
	if !s.allowMutation(w) {
		return
	}

	var req BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := s.parseDate(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Court < 1 || req.Court > s.courts {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("court must be between 1 and %d", s.courts))
		return
	}
	if req.StartHour != nil {
		h := *req.StartHour
		if h < s.window.OpenHour || h >= s.window.CloseHour {
			writeError(w, http.StatusBadRequest, fmt.Sprintf(
				"startHour must be between %d and %d", s.window.OpenHour, s.window.CloseHour-1))
			return
		}
	}

	b, err := s.bookings.Submit(r.Context(), booking.Request{
		Name:      req.Name,
		Email:     req.Email,
		Court:     req.Court,
		Date:      req.Date,
		StartHour: req.StartHour,
	})
	switch {
	case errors.Is(err, booking.ErrIncompleteForm):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, booking.ErrSlotConflict):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		s.logger.Error().Err(err).Msg("booking submission failed")
		writeError(w, http.StatusInternalServerError, "could not save booking")
		return
	}

	writeJSON(w, http.StatusCreated, BookingResponse{
		Booking: b,
		Message: "Booked. Check your email for details.",
	})
}

// DELETE /api/bookings/{id}
func (s *Server) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_cancel")
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use DELETE")
		return
	}
	if !s.allowMutation(w) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/bookings/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	err := s.bookings.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, booking.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.logger.Error().Err(err).Msg("booking cancellation failed")
		writeError(w, http.StatusInternalServerError, "could not cancel booking")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/export?date=YYYY-MM-DD
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	date, err := s.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	key := model.DateKey(date)

	var buf bytes.Buffer
	if err := export.WriteDay(&buf, key, s.store.ForDate(key)); err != nil {
		s.logger.Error().Err(err).Msg("export failed")
		writeError(w, http.StatusInternalServerError, "could not build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bookings-%s.xlsx", key))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	date, err := time.ParseInLocation(model.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format; expected YYYY-MM-DD")
	}
	return date, nil
}

func (s *Server) parseCourt(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("court is required")
	}
	court, err := strconv.Atoi(raw)
	if err != nil || court < 1 || court > s.courts {
		return 0, fmt.Errorf("court must be between 1 and %d", s.courts)
	}
	return court, nil
}
