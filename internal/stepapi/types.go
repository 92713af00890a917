// Package stepapi defines the JSON protocol spoken between the workflow
// engine and the step services when steps run as separate processes.
// Failures travel inside the envelope, not as HTTP errors, so a failed
// step and a succeeded step look the same at the transport level.
package stepapi

import (
	"encoding/json"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
)

// Step names used in ServiceError and logging.
const (
	StepParser       = "IntentParser"
	StepAvailability = "AvailabilityChecker"
	StepBooking      = "BookingHandler"
)

// ServiceResponse is the envelope written by step servers.
type ServiceResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RawResponse is the envelope as read by the remote step client; Data is
// decoded per step.
type RawResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func Success(data interface{}) ServiceResponse {
	return ServiceResponse{Success: true, Data: data}
}

func Failure(err error) ServiceResponse {
	return ServiceResponse{Success: false, Error: err.Error()}
}

type ParseRequest struct {
	Message string `json:"message"`
}

type AvailabilityRequest struct {
	Intent domain.ParsedIntent `json:"intent"`
}

type BookRequest struct {
	SlotID string `json:"slot_id"`
}

type SlotInfo struct {
	SlotID          string `json:"slot_id"`
	Court           string `json:"court"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AvailabilityResult struct {
	Slots   []SlotInfo `json:"slots"`
	Message string     `json:"message"`
	Date    string     `json:"date"`
	Time    string     `json:"time,omitempty"`
}

type BookingInfo struct {
	BookingID int64  `json:"booking_id"`
	Reference string `json:"reference"`
	SlotID    string `json:"slot_id"`
	Court     string `json:"court"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func ToSlotInfo(slot domain.Slot) SlotInfo {
	return SlotInfo{
		SlotID:          slot.ID,
		Court:           slot.Court,
		Date:            slot.Date,
		Time:            slot.Time,
		DurationMinutes: slot.DurationMinutes,
	}
}

func (s SlotInfo) ToDomain() domain.Slot {
	return domain.Slot{
		ID:              s.SlotID,
		Court:           s.Court,
		Date:            s.Date,
		Time:            s.Time,
		DurationMinutes: s.DurationMinutes,
		Available:       true,
	}
}

func ToAvailabilityResult(result availability.Result) AvailabilityResult {
	slots := make([]SlotInfo, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, ToSlotInfo(slot))
	}
	return AvailabilityResult{
		Slots:   slots,
		Message: result.Message,
		Date:    result.Date,
		Time:    result.Time,
	}
}

func (r AvailabilityResult) ToDomain() availability.Result {
	slots := make([]domain.Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, s.ToDomain())
	}
	return availability.Result{
		Slots:   slots,
		Message: r.Message,
		Date:    r.Date,
		Time:    r.Time,
	}
}

func ToBookingInfo(booking *domain.Booking) BookingInfo {
	return BookingInfo{
		BookingID: booking.ID,
		Reference: booking.Reference(),
		SlotID:    booking.SlotID,
		Court:     booking.Court,
		Date:      booking.Date,
		Time:      booking.Time,
		Status:    string(booking.Status),
	}
}

func (b BookingInfo) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:     b.BookingID,
		SlotID: b.SlotID,
		Court:  b.Court,
		Date:   b.Date,
		Time:   b.Time,
		Status: domain.BookingStatus(b.Status),
	}
}
