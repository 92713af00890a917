package domain

import "fmt"

// ParseError means the user message could not be turned into an intent:
// empty input, malformed parser output, or an upstream parser failure.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// SlotNotFoundError means the requested slot id does not exist.
type SlotNotFoundError struct {
	SlotID string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("Slot '%s' not found", e.SlotID)
}

// SlotNotAvailableError means the slot exists but is already booked.
type SlotNotAvailableError struct {
	SlotID string
}

func (e *SlotNotAvailableError) Error() string {
	return fmt.Sprintf("Slot '%s' is already booked", e.SlotID)
}

// NoSlotsAvailableError means no slots matched the requested date/time.
type NoSlotsAvailableError struct {
	Date string
	Time string
}

func (e *NoSlotsAvailableError) Error() string {
	if e.Time != "" {
		return fmt.Sprintf("No slots available for %s at %s", e.Date, e.Time)
	}
	return fmt.Sprintf("No slots available for %s", e.Date)
}

// InvalidSlotPreferenceError means the user asked for slot number N but
// fewer than N candidates matched.
type InvalidSlotPreferenceError struct {
	Requested int
	Available int
}

func (e *InvalidSlotPreferenceError) Error() string {
	return fmt.Sprintf("Requested slot %d, but only %d slots available", e.Requested, e.Available)
}

// BookingNotFoundError means no booking exists with the given id.
type BookingNotFoundError struct {
	BookingID int64
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("Booking %d not found", e.BookingID)
}

// ServiceError wraps a failure from a workflow step running as an
// independent service. Transport details never pass through it; only the
// failing step's name and the originating message do.
type ServiceError struct {
	Step    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}
