package booking_service_api

import (
	"net/http"

	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/Domenick1991/courtbooking/internal/stepapi"
	"github.com/gin-gonic/gin"
)

// Server exposes the booking step under the envelope protocol.
type Server struct {
	service booking.UseCase
}

func NewServer(service booking.UseCase) *Server {
	return &Server{service: service}
}

func (s *Server) Register(router gin.IRouter) {
	router.POST("/book", s.book)
}

func (s *Server) book(c *gin.Context) {
	var req stepapi.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	created, err := s.service.Book(c.Request.Context(), req.SlotID)
	if err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	c.JSON(http.StatusOK, stepapi.Success(stepapi.ToBookingInfo(created)))
}
