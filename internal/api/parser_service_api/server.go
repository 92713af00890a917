package parser_service_api

import (
	"net/http"

	"github.com/Domenick1991/courtbooking/internal/parser"
	"github.com/Domenick1991/courtbooking/internal/stepapi"
	"github.com/gin-gonic/gin"
)

// Server exposes the intent parsing step under the envelope protocol.
type Server struct {
	parser parser.IntentParser
}

func NewServer(p parser.IntentParser) *Server {
	return &Server{parser: p}
}

func (s *Server) Register(router gin.IRouter) {
	router.POST("/parse", s.parse)
}

func (s *Server) parse(c *gin.Context) {
	var req stepapi.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	intent, err := s.parser.Parse(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusOK, stepapi.Failure(err))
		return
	}

	c.JSON(http.StatusOK, stepapi.Success(intent))
}
