package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWorkflowRunner struct {
	mock.Mock
}

func (m *MockWorkflowRunner) Run(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func newChatContext(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest("POST", "/chat", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestChatHandler_Success(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	c, w := newChatContext(t, chatRequest{Message: "Book a court tomorrow at 3pm"})

	mockRunner.On("Run", c.Request.Context(), "Book a court tomorrow at 3pm").
		Return("Booking confirmed!\n  Booking ID: BK0001\n  Court: Court A\n  Date: 2025-06-10\n  Time: 15:00", nil).Once()

	handler.chat(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response chatResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Response, "BK0001")

	mockRunner.AssertExpectations(t)
}

func TestChatHandler_ParseErrorIsBadRequest(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	c, w := newChatContext(t, chatRequest{Message: "   "})

	mockRunner.On("Run", c.Request.Context(), "   ").
		Return("", &domain.ParseError{Message: "No message provided"}).Once()

	handler.chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No message provided")
}

func TestChatHandler_InvalidPreferenceIsBadRequest(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	c, w := newChatContext(t, chatRequest{Message: "Book the fifth slot"})

	mockRunner.On("Run", c.Request.Context(), "Book the fifth slot").
		Return("", &domain.InvalidSlotPreferenceError{Requested: 5, Available: 3}).Once()

	handler.chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requested slot 5, but only 3 slots available")
}

func TestChatHandler_ServiceErrorIsBadRequest(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	c, w := newChatContext(t, chatRequest{Message: "Book a court"})

	mockRunner.On("Run", c.Request.Context(), "Book a court").
		Return("", &domain.ServiceError{Step: "BookingHandler", Message: "service unreachable"}).Once()

	handler.chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BookingHandler failed")
}

func TestChatHandler_UnexpectedErrorIsGeneric500(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	c, w := newChatContext(t, chatRequest{Message: "Book a court"})

	mockRunner.On("Run", c.Request.Context(), "Book a court").
		Return("", errors.New("redis connection pool exhausted")).Once()

	handler.chat(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail must not leak to the caller.
	assert.NotContains(t, w.Body.String(), "redis")
	assert.Contains(t, w.Body.String(), "An internal error occurred")
}

func TestChatHandler_BadJSON(t *testing.T) {
	mockRunner := &MockWorkflowRunner{}
	handler := NewChatHandler(mockRunner)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/chat", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRunner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}
