package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/repository"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubParser stands in for the external intent parser so the full local
// pipeline can run against a real repository.
type stubParser struct {
	intent domain.ParsedIntent
	err    error
}

func (p *stubParser) Parse(ctx context.Context, message string) (domain.ParsedIntent, error) {
	if p.err != nil {
		return domain.ParsedIntent{}, p.err
	}
	intent := p.intent
	intent.RawMessage = message
	return intent, nil
}

func newLocalEngine(t *testing.T, intent domain.ParsedIntent) (*Engine, *repository.MemorySlotRepository) {
	t.Helper()
	repo := repository.NewMemorySlotRepository(
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		2,
		[]string{"Court A", "Court B"},
		[]string{"09:00", "15:00"},
		60,
	)

	availabilitySvc := availability.NewService(repo, nil)
	bookingSvc := booking.NewService(repo)
	steps := NewLocalSteps(&stubParser{intent: intent}, availabilitySvc, bookingSvc)
	return NewEngine(steps), repo
}

func TestLocalWorkflow_BooksMatchingSlot(t *testing.T) {
	engine, repo := newLocalEngine(t, domain.ParsedIntent{Date: "2025-06-10", Time: "15:00"})
	ctx := context.Background()

	response, err := engine.Run(ctx, "Book a court on June 10th at 3pm")
	require.NoError(t, err)
	assert.Contains(t, response, "Booking confirmed!")
	assert.Contains(t, response, "BK0001")
	assert.Contains(t, response, "Court A")
	assert.Contains(t, response, "2025-06-10")
	assert.Contains(t, response, "15:00")

	booked, err := repo.GetBooking(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10_CourtA_1500", booked.SlotID)
}

func TestLocalWorkflow_NoAvailability(t *testing.T) {
	engine, repo := newLocalEngine(t, domain.ParsedIntent{Date: "2030-01-01"})
	ctx := context.Background()

	response, err := engine.Run(ctx, "Book a court in 2030")
	require.NoError(t, err)
	assert.Equal(t, "No available slots found for 2030-01-01.", response)

	// No booking was created.
	_, err = repo.GetBooking(ctx, 1)
	assert.Error(t, err)
}

func TestLocalWorkflow_InvalidPreference(t *testing.T) {
	pref := 3
	engine, repo := newLocalEngine(t, domain.ParsedIntent{Date: "2025-06-10", Time: "09:00", SlotPreference: &pref})
	ctx := context.Background()

	// Book Court B at 09:00 so only one candidate remains.
	_, err := repo.Book(ctx, domain.SlotID("2025-06-10", "Court B", "09:00"))
	require.NoError(t, err)

	_, err = engine.Run(ctx, "Book the third slot at 9am")
	require.Error(t, err)

	var invalid *domain.InvalidSlotPreferenceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Requested)
	assert.Equal(t, 1, invalid.Available)
}

func TestLocalWorkflow_SecondBookingTakesNextCourt(t *testing.T) {
	engine, _ := newLocalEngine(t, domain.ParsedIntent{Date: "2025-06-10", Time: "15:00"})
	ctx := context.Background()

	first, err := engine.Run(ctx, "Book at 3pm")
	require.NoError(t, err)
	assert.Contains(t, first, "Court A")

	second, err := engine.Run(ctx, "Book at 3pm")
	require.NoError(t, err)
	assert.Contains(t, second, "Court B")
	assert.Contains(t, second, "BK0002")
}
