package parser_service_api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/Domenick1991/courtbooking/internal/stepapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	intent domain.ParsedIntent
	err    error
}

func (p *stubParser) Parse(ctx context.Context, message string) (domain.ParsedIntent, error) {
	if p.err != nil {
		return domain.ParsedIntent{}, p.err
	}
	intent := p.intent
	intent.RawMessage = message
	return intent, nil
}

func doParse(t *testing.T, p *stubParser, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewServer(p).Register(router)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestParseStep_Success(t *testing.T) {
	p := &stubParser{intent: domain.ParsedIntent{Date: "2025-06-10", Time: "15:00"}}

	w := doParse(t, p, stepapi.ParseRequest{Message: "book tomorrow at 3pm"})

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope stepapi.RawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	var intent domain.ParsedIntent
	require.NoError(t, json.Unmarshal(envelope.Data, &intent))
	assert.Equal(t, "2025-06-10", intent.Date)
	assert.Equal(t, "book tomorrow at 3pm", intent.RawMessage)
}

func TestParseStep_FailureTravelsInEnvelope(t *testing.T) {
	p := &stubParser{err: &domain.ParseError{Message: "No message provided"}}

	w := doParse(t, p, stepapi.ParseRequest{Message: ""})

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope stepapi.RawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "No message provided", envelope.Error)
}
