package availability_service_api

import (
	"net/http"

	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/stepapi"
	"github.com/gin-gonic/gin"
)

// Server exposes the availability query step under the envelope protocol.
type Server struct {
	service availability.UseCase
}

func NewServer(service availability.UseCase) *Server {
	return &Server{service: service}
}

func (s *Server) Register(router gin.IRouter) {
	router.POST("/availability", s.find)
}

func (s *Server) find(c *gin.Context) {
	var req stepapi.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	if err := req.Intent.Validate(); err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	result, err := s.service.Find(c.Request.Context(), req.Intent)
	if err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	c.JSON(http.StatusOK, stepapi.Success(stepapi.ToAvailabilityResult(result)))
}
