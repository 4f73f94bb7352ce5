// Package schedule defines the daily slot window and resolves the status
// of each slot against the booking collection and the clock.
package schedule

import (
	"time"

	"pitchbook/internal/model"
)

// Status of a single slot on the grid.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusPast      Status = "past"
)

// Slot pairs a start hour with its resolved status.
type Slot struct {
	Hour   int    `json:"hour"`
	Status Status `json:"status"`
}

// Resolve computes the status of every slot in the window for one court on
// one date. On the current calendar day every hour up to and including the
// hour now in progress is past, and past takes precedence over booked.
// Always returns exactly one entry per window hour.
func Resolve(date time.Time, court int, bookings []model.Booking, now time.Time, window Window) []Slot {
	dateKey := model.DateKey(date)

	booked := make(map[int]struct{})
	for _, b := range bookings {
		if b.Court == court && b.Date == dateKey {
			booked[b.StartHour] = struct{}{}
		}
	}

	isToday := dateKey == model.DateKey(now)

	hours := window.Hours()
	slots := make([]Slot, 0, len(hours))
	for _, h := range hours {
		status := StatusAvailable
		if isToday && h <= now.Hour() {
			status = StatusPast
		} else if _, ok := booked[h]; ok {
			status = StatusBooked
		}
		slots = append(slots, Slot{Hour: h, Status: status})
	}
	return slots
}
