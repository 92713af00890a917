package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/stepapi"
)

// RemoteSteps calls independently deployed step services over HTTP.
// Any failure, whether transport or a failed envelope, surfaces as
// *domain.ServiceError naming the step.
type RemoteSteps struct {
	client          *http.Client
	parserURL       string
	availabilityURL string
	bookingURL      string
}

func NewRemoteSteps(parserURL, availabilityURL, bookingURL string, timeout time.Duration) *RemoteSteps {
	return &RemoteSteps{
		client:          &http.Client{Timeout: timeout},
		parserURL:       strings.TrimRight(parserURL, "/"),
		availabilityURL: strings.TrimRight(availabilityURL, "/"),
		bookingURL:      strings.TrimRight(bookingURL, "/"),
	}
}

func (s *RemoteSteps) Parse(ctx context.Context, message string) (domain.ParsedIntent, error) {
	var intent domain.ParsedIntent
	req := stepapi.ParseRequest{Message: message}
	if err := s.call(ctx, stepapi.StepParser, s.parserURL+"/parse", req, &intent); err != nil {
		return domain.ParsedIntent{}, err
	}
	return intent, nil
}

func (s *RemoteSteps) FindSlots(ctx context.Context, intent domain.ParsedIntent) (availability.Result, error) {
	var result stepapi.AvailabilityResult
	req := stepapi.AvailabilityRequest{Intent: intent}
	if err := s.call(ctx, stepapi.StepAvailability, s.availabilityURL+"/availability", req, &result); err != nil {
		return availability.Result{}, err
	}
	return result.ToDomain(), nil
}

func (s *RemoteSteps) Book(ctx context.Context, slotID string) (*domain.Booking, error) {
	var info stepapi.BookingInfo
	req := stepapi.BookRequest{SlotID: slotID}
	if err := s.call(ctx, stepapi.StepBooking, s.bookingURL+"/book", req, &info); err != nil {
		return nil, err
	}
	return info.ToDomain(), nil
}

func (s *RemoteSteps) call(ctx context.Context, step, url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var envelope stepapi.RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = "unknown error"
		}
		return &domain.ServiceError{Step: step, Message: message}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &domain.ServiceError{Step: step, Message: fmt.Sprintf("malformed response data: %v", err)}
	}
	return nil
}

var _ Steps = (*RemoteSteps)(nil)
