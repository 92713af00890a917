package domain

import "regexp"

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParsedIntent is the structured output of the intent parser. Date and
// Time are optional; when present they are format-checked only, not
// validated for business meaning (a past date simply matches no slots).
type ParsedIntent struct {
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	SlotPreference *int   `json:"slot_preference,omitempty"`
	RawMessage     string `json:"raw_message"`
}

// Validate rejects malformed date/time strings and non-positive slot
// preferences. A parser that returns an intent failing Validate has
// failed to parse.
func (i ParsedIntent) Validate() error {
	if i.Date != "" && !dateFormat.MatchString(i.Date) {
		return &ParseError{Message: "date must be in YYYY-MM-DD format, got: " + i.Date}
	}
	if i.Time != "" && !timeFormat.MatchString(i.Time) {
		return &ParseError{Message: "time must be in HH:MM format, got: " + i.Time}
	}
	if i.SlotPreference != nil && *i.SlotPreference < 1 {
		return &ParseError{Message: "slot preference must be a positive number"}
	}
	return nil
}
