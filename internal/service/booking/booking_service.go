package booking

import (
	"context"
	"log"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/kafka"
	"github.com/Domenick1991/courtbooking/internal/repository"
	"github.com/google/uuid"
)

type UseCase interface {
	Book(ctx context.Context, slotID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// Cache is the slice of the availability cache this service needs: a claim
// makes the cached listing for that date stale.
type Cache interface {
	InvalidateDate(ctx context.Context, date string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Service wraps the repository claim with its side effects: cache
// invalidation and the booking_confirmed event. The claim itself is the
// repository's job; everything here is best-effort and never undoes a
// committed booking.
type Service struct {
	repo               repository.SlotRepository
	cache              Cache
	producer           Producer
	notificationsTopic string
}

type ServiceOption func(*Service)

func WithCache(cache Cache) ServiceOption {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, notificationsTopic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.notificationsTopic = notificationsTopic
	}
}

func NewService(repo repository.SlotRepository, opts ...ServiceOption) *Service {
	service := &Service{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service) Book(ctx context.Context, slotID string) (*domain.Booking, error) {
	booking, err := s.repo.Book(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateDate(ctx, booking.Date); err != nil {
			log.Printf("WARNING: failed to invalidate availability cache for %s: %v", booking.Date, err)
		}
	}

	if err := s.publish(ctx, "booking_confirmed", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed event for %s: %v", booking.Reference(), err)
	}

	return booking, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.repo.GetBooking(ctx, bookingID)
}

func (s *Service) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.notificationsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		BookingID: booking.ID,
		Reference: booking.Reference(),
		SlotID:    booking.SlotID,
		Court:     booking.Court,
		Date:      booking.Date,
		Time:      booking.Time,
		Status:    string(booking.Status),
	}
	return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference(), event)
}

var _ UseCase = (*Service)(nil)
