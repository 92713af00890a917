package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/repository"
)

type UseCase interface {
	Find(ctx context.Context, intent domain.ParsedIntent) (Result, error)
}

// Cache holds whole-day availability listings. Time-filtered queries
// bypass it.
type Cache interface {
	GetAvailability(ctx context.Context, date string) ([]domain.Slot, error)
	SetAvailability(ctx context.Context, date string, slots []domain.Slot) error
}

// Result is the ordered candidate list for one query plus a human-readable
// summary of what was searched.
type Result struct {
	Slots   []domain.Slot `json:"slots"`
	Message string        `json:"message"`
	Date    string        `json:"date"`
	Time    string        `json:"time,omitempty"`
}

// Service answers availability queries. It holds no state of its own; it
// reads the repository and optionally keeps a cache warm. When the intent
// carries no date, the query defaults to today.
type Service struct {
	repo  repository.SlotRepository
	cache Cache
	now   func() time.Time
}

type ServiceOption func(*Service)

// WithClock replaces the time source used for the default date.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.SlotRepository, cache Cache, opts ...ServiceOption) *Service {
	service := &Service{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service) Find(ctx context.Context, intent domain.ParsedIntent) (Result, error) {
	date := intent.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	tm := intent.Time

	if tm == "" && s.cache != nil {
		if cached, err := s.cache.GetAvailability(ctx, date); err == nil && cached != nil {
			return buildResult(cached, date, tm), nil
		}
	}

	slots, err := s.repo.CheckAvailability(ctx, date, tm)
	if err != nil {
		return Result{}, err
	}

	if tm == "" && s.cache != nil {
		_ = s.cache.SetAvailability(ctx, date, slots)
	}

	return buildResult(slots, date, tm), nil
}

func buildResult(slots []domain.Slot, date, tm string) Result {
	var message string
	if len(slots) > 0 {
		timeFilter := ""
		if tm != "" {
			timeFilter = " at " + tm
		}
		message = fmt.Sprintf("Found %d available slot(s) on %s%s.", len(slots), date, timeFilter)
	} else {
		message = fmt.Sprintf("No available slots found for %s.", date)
	}

	return Result{
		Slots:   slots,
		Message: message,
		Date:    date,
		Time:    tm,
	}
}

var _ UseCase = (*Service)(nil)
