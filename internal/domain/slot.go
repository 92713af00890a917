package domain

import "strings"

// Slot is one reservable (court, date, time) unit. Court, Date, Time and
// DurationMinutes never change after creation; only Available flips, once,
// when the slot is claimed.
type Slot struct {
	ID              string
	Court           string
	Date            string
	Time            string
	DurationMinutes int
	Available       bool
}

// SlotID derives the slot identifier from its components, so the same
// (date, court, time) always produces the same id without a lookup.
// Example: SlotID("2025-06-10", "Court A", "15:00") -> "2025-06-10_CourtA_1500".
func SlotID(date, court, tm string) string {
	court = strings.ReplaceAll(court, " ", "")
	tm = strings.ReplaceAll(tm, ":", "")
	return date + "_" + court + "_" + tm
}
