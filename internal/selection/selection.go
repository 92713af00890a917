package selection

import (
	"errors"

	"github.com/Domenick1991/courtbooking/internal/domain"
)

// Select picks one slot from an ordered, non-empty candidate list.
// A nil preference means the first candidate. A preference of N means the
// Nth candidate (1-based). An out-of-range preference fails with
// InvalidSlotPreferenceError; it is never clamped.
func Select(candidates []domain.Slot, preference *int) (domain.Slot, error) {
	if len(candidates) == 0 {
		return domain.Slot{}, errors.New("selection requires at least one candidate")
	}

	if preference == nil {
		return candidates[0], nil
	}

	p := *preference
	if p < 1 || p > len(candidates) {
		return domain.Slot{}, &domain.InvalidSlotPreferenceError{Requested: p, Available: len(candidates)}
	}
	return candidates[p-1], nil
}
