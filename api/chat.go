package api

import (
	"context"
	"log"
	"net/http"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// WorkflowRunner is the slice of the workflow engine the chat handler
// needs.
type WorkflowRunner interface {
	Run(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	engine WorkflowRunner
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func NewChatHandler(engine WorkflowRunner) *ChatHandler {
	return &ChatHandler{engine: engine}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.chat)
}

func (h *ChatHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.engine.Run(c.Request.Context(), req.Message)
	if err != nil {
		status, message := classify(err)
		if status == http.StatusInternalServerError {
			log.Printf("chat: unexpected error: %v", err)
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, chatResponse{Response: response})
}

// classify maps workflow failures to HTTP statuses. Typed booking errors
// carry user-facing remediation text and go out as 400; anything
// unclassified becomes a generic 500 with full detail kept in the logs.
func classify(err error) (int, string) {
	switch err.(type) {
	case *domain.ParseError,
		*domain.SlotNotFoundError,
		*domain.SlotNotAvailableError,
		*domain.NoSlotsAvailableError,
		*domain.InvalidSlotPreferenceError,
		*domain.ServiceError:
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "An internal error occurred. Please try again later."
	}
}
