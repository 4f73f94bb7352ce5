package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingID(t *testing.T) {
	assert.Equal(t, "2024-06-10-1-9", BookingID("2024-06-10", 1, 9))

	// Deterministic: recomputing from the same triple reproduces the id.
	first := BookingID("2024-06-10", 2, 14)
	second := BookingID("2024-06-10", 2, 14)
	assert.Equal(t, first, second)

	// Distinct triples produce distinct ids.
	assert.NotEqual(t, BookingID("2024-06-10", 1, 9), BookingID("2024-06-10", 2, 9))
	assert.NotEqual(t, BookingID("2024-06-10", 1, 9), BookingID("2024-06-11", 1, 9))
}

func TestDateKey(t *testing.T) {
	morning := time.Date(2024, 6, 10, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-10", DateKey(morning))
	assert.Equal(t, "2024-06-10", DateKey(evening))
}

func TestSlotLabel(t *testing.T) {
	b := Booking{StartHour: 9}
	assert.Equal(t, "09:00 – 10:00", b.SlotLabel())
}
