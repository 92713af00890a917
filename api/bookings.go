package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.UseCase
}

type bookingResponse struct {
	BookingID int64  `json:"booking_id"`
	Reference string `json:"reference"`
	SlotID    string `json:"slot_id"`
	Court     string `json:"court"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func NewBookingHandler(service booking.UseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id", h.get)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	found, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if _, ok := err.(*domain.BookingNotFoundError); ok {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		BookingID: found.ID,
		Reference: found.Reference(),
		SlotID:    found.SlotID,
		Court:     found.Court,
		Date:      found.Date,
		Time:      found.Time,
		Status:    string(found.Status),
	})
}
