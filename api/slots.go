package api

import (
	"net/http"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	service availability.UseCase
}

type slotResponse struct {
	SlotID          string `json:"slot_id"`
	Court           string `json:"court"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type availabilityResponse struct {
	Slots   []slotResponse `json:"slots"`
	Message string         `json:"message"`
}

func NewSlotHandler(service availability.UseCase) *SlotHandler {
	return &SlotHandler{service: service}
}

func (h *SlotHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *SlotHandler) list(c *gin.Context) {
	intent := domain.ParsedIntent{
		Date: c.Query("date"),
		Time: c.Query("time"),
	}
	if err := intent.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Find(c.Request.Context(), intent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slots := make([]slotResponse, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, slotResponse{
			SlotID:          slot.ID,
			Court:           slot.Court,
			Date:            slot.Date,
			Time:            slot.Time,
			DurationMinutes: slot.DurationMinutes,
		})
	}

	c.JSON(http.StatusOK, availabilityResponse{Slots: slots, Message: result.Message})
}
