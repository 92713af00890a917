package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/selection"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
)

// Steps is the capability set the engine runs over. LocalSteps calls the
// services in-process; RemoteSteps crosses an HTTP boundary. The engine
// does not know which it holds.
type Steps interface {
	Parse(ctx context.Context, message string) (domain.ParsedIntent, error)
	FindSlots(ctx context.Context, intent domain.ParsedIntent) (availability.Result, error)
	Book(ctx context.Context, slotID string) (*domain.Booking, error)
}

// Engine executes the fixed booking sequence:
// parse -> check availability -> select -> book. One pass per call, no
// retries, no state kept between calls. An empty candidate list is a
// terminal success with a user-facing message, not an error.
type Engine struct {
	steps Steps
}

func NewEngine(steps Steps) *Engine {
	return &Engine{steps: steps}
}

func (e *Engine) Run(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &domain.ParseError{Message: "No message provided"}
	}

	intent, err := e.steps.Parse(ctx, message)
	if err != nil {
		return "", err
	}
	log.Printf("workflow: parsed intent date=%q time=%q", intent.Date, intent.Time)

	result, err := e.steps.FindSlots(ctx, intent)
	if err != nil {
		return "", err
	}
	log.Printf("workflow: found %d available slots", len(result.Slots))

	if len(result.Slots) == 0 {
		return result.Message, nil
	}

	slot, err := selection.Select(result.Slots, intent.SlotPreference)
	if err != nil {
		return "", err
	}
	log.Printf("workflow: selected slot %s", slot.ID)

	booking, err := e.steps.Book(ctx, slot.ID)
	if err != nil {
		return "", err
	}
	log.Printf("workflow: booked %s", booking.Reference())

	return confirmation(booking), nil
}

func confirmation(b *domain.Booking) string {
	return fmt.Sprintf(
		"Booking confirmed!\n  Booking ID: %s\n  Court: %s\n  Date: %s\n  Time: %s",
		b.Reference(), b.Court, b.Date, b.Time,
	)
}
