package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/courtbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send confirmation for %s: %s on %s at %s\n", event.Reference, event.Court, event.Date, event.Time)
	return nil
}
