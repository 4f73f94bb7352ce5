package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format bookings are keyed by.
const DateLayout = "2006-01-02"

// Booking represents a confirmed one-hour court reservation. Bookings are
// never mutated after creation.
type Booking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Court     int    `json:"court"`
	Date      string `json:"date"`      // YYYY-MM-DD, local calendar day
	StartHour int    `json:"startHour"` // slot covers [StartHour, StartHour+1)
}

// BookingID derives the booking identity from its slot. The same
// (date, court, startHour) triple always produces the same id; the
// uniqueness check and stable rendering keys both depend on that.
func BookingID(date string, court, startHour int) string {
	return fmt.Sprintf("%s-%d-%d", date, court, startHour)
}

// DateKey formats t as its calendar day, independent of time-of-day.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SlotLabel formats the booked hour range for display, e.g. "09:00 – 10:00".
func (b Booking) SlotLabel() string {
	return fmt.Sprintf("%02d:00 – %02d:00", b.StartHour, b.StartHour+1)
}
