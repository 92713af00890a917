package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)

// Booking is a confirmed claim on exactly one slot. At most one booking
// ever exists per slot; bookings are immutable and never deleted.
type Booking struct {
	ID     int64
	SlotID string
	Court  string
	Date   string
	Time   string
	Status BookingStatus
}

// Reference renders the id in the form shown to users, e.g. "BK0007".
func (b Booking) Reference() string {
	return fmt.Sprintf("BK%04d", b.ID)
}
