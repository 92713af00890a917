package workflow

import (
	"context"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/parser"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
)

// LocalSteps runs every step as a direct call into the in-process
// services. Failures propagate as the typed domain errors the services
// raise.
type LocalSteps struct {
	parser       parser.IntentParser
	availability availability.UseCase
	booking      booking.UseCase
}

func NewLocalSteps(p parser.IntentParser, a availability.UseCase, b booking.UseCase) *LocalSteps {
	return &LocalSteps{parser: p, availability: a, booking: b}
}

func (s *LocalSteps) Parse(ctx context.Context, message string) (domain.ParsedIntent, error) {
	return s.parser.Parse(ctx, message)
}

func (s *LocalSteps) FindSlots(ctx context.Context, intent domain.ParsedIntent) (availability.Result, error) {
	return s.availability.Find(ctx, intent)
}

func (s *LocalSteps) Book(ctx context.Context, slotID string) (*domain.Booking, error) {
	return s.booking.Book(ctx, slotID)
}

var _ Steps = (*LocalSteps)(nil)
