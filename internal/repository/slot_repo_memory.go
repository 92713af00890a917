package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/courtbooking/internal/domain"
)

type SlotRepository interface {
	CheckAvailability(ctx context.Context, date, tm string) ([]domain.Slot, error)
	Book(ctx context.Context, slotID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	Slots(ctx context.Context) ([]domain.Slot, error)
}

// MemorySlotRepository owns every Slot and Booking record. All state lives
// in process memory and resets on restart. A single mutex covers the
// check-and-flip in Book, so two concurrent claims on the same slot are
// linearized: one succeeds, the other sees SlotNotAvailableError.
type MemorySlotRepository struct {
	mu            sync.Mutex
	slots         map[string]*domain.Slot
	bookings      map[int64]domain.Booking
	nextBookingID int64
}

// NewMemorySlotRepository generates one slot per (day x court x time)
// combination for horizonDays starting at start. Slot ids are derived from
// the components, so regenerating the same schedule yields the same ids.
func NewMemorySlotRepository(start time.Time, horizonDays int, courts, times []string, slotMinutes int) *MemorySlotRepository {
	r := &MemorySlotRepository{
		slots:    make(map[string]*domain.Slot, horizonDays*len(courts)*len(times)),
		bookings: make(map[int64]domain.Booking),
	}

	for day := 0; day < horizonDays; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		for _, court := range courts {
			for _, tm := range times {
				id := domain.SlotID(date, court, tm)
				r.slots[id] = &domain.Slot{
					ID:              id,
					Court:           court,
					Date:            date,
					Time:            tm,
					DurationMinutes: slotMinutes,
					Available:       true,
				}
			}
		}
	}
	return r
}

// CheckAvailability returns the available slots matching date and, if tm is
// non-empty, matching tm exactly. The result is sorted by (time, court) so
// repeated calls under unchanged state return identical sequences.
func (r *MemorySlotRepository) CheckAvailability(ctx context.Context, date, tm string) ([]domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	available := make([]domain.Slot, 0)
	for _, slot := range r.slots {
		if slot.Date != date || !slot.Available {
			continue
		}
		if tm != "" && slot.Time != tm {
			continue
		}
		available = append(available, *slot)
	}

	sort.Slice(available, func(i, j int) bool {
		if available[i].Time != available[j].Time {
			return available[i].Time < available[j].Time
		}
		return available[i].Court < available[j].Court
	})
	return available, nil
}

// Book atomically checks the slot and flips it to unavailable, recording a
// booking with the next id. Booking ids are strictly increasing and never
// reused.
func (r *MemorySlotRepository) Book(ctx context.Context, slotID string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, &domain.SlotNotFoundError{SlotID: slotID}
	}
	if !slot.Available {
		return nil, &domain.SlotNotAvailableError{SlotID: slotID}
	}

	r.nextBookingID++
	booking := domain.Booking{
		ID:     r.nextBookingID,
		SlotID: slot.ID,
		Court:  slot.Court,
		Date:   slot.Date,
		Time:   slot.Time,
		Status: domain.BookingStatusConfirmed,
	}

	slot.Available = false
	r.bookings[booking.ID] = booking

	return &booking, nil
}

func (r *MemorySlotRepository) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, &domain.BookingNotFoundError{BookingID: bookingID}
	}
	return &booking, nil
}

// Slots returns a copy of the full catalog sorted by (date, time, court).
func (r *MemorySlotRepository) Slots(ctx context.Context) ([]domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.Slot, 0, len(r.slots))
	for _, slot := range r.slots {
		all = append(all, *slot)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		if all[i].Time != all[j].Time {
			return all[i].Time < all[j].Time
		}
		return all[i].Court < all[j].Court
	})
	return all, nil
}

var _ SlotRepository = (*MemorySlotRepository)(nil)
