package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `You are a booking intent parser. Extract booking details from user messages.

Today's date is %s.

Return a JSON object with:
- date: extracted date in YYYY-MM-DD format (null if not specified)
- time: extracted time in HH:MM format (null if not specified)
- slot_preference: the slot number the user asked for, 1-based (null if not specified)

Handle relative dates like "tomorrow", "next Monday", etc.
Handle time expressions like "afternoon" (14:00), "morning" (09:00), "evening" (17:00).

Return ONLY valid JSON, no other text.`

// GeminiParser extracts booking intent with Google's Gemini API.
type GeminiParser struct {
	client  *genai.Client
	modelID string
	now     func() time.Time
}

func NewGeminiParser(ctx context.Context, apiKey, modelID string) (*GeminiParser, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("parser: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to create gemini client: %w", err)
	}

	return &GeminiParser{
		client:  client,
		modelID: modelID,
		now:     time.Now,
	}, nil
}

func (p *GeminiParser) Close() error {
	return p.client.Close()
}

func (p *GeminiParser) Parse(ctx context.Context, message string) (domain.ParsedIntent, error) {
	if strings.TrimSpace(message) == "" {
		return domain.ParsedIntent{}, &domain.ParseError{Message: "No message provided"}
	}

	model := p.client.GenerativeModel(p.modelID)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	today := p.now().Format("2006-01-02")
	model.SystemInstruction = genai.NewUserContent(genai.Text(fmt.Sprintf(systemPrompt, today)))

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return domain.ParsedIntent{}, &domain.ParseError{Message: fmt.Sprintf("intent parsing failed: %v", err)}
	}

	text, err := extractText(resp)
	if err != nil {
		return domain.ParsedIntent{}, &domain.ParseError{Message: err.Error()}
	}

	var extracted struct {
		Date           *string `json:"date"`
		Time           *string `json:"time"`
		SlotPreference *int    `json:"slot_preference"`
	}
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return domain.ParsedIntent{}, &domain.ParseError{Message: fmt.Sprintf("failed to parse model response: %v", err)}
	}

	intent := domain.ParsedIntent{
		SlotPreference: extracted.SlotPreference,
		RawMessage:     message,
	}
	if extracted.Date != nil {
		intent.Date = *extracted.Date
	}
	if extracted.Time != nil {
		intent.Time = *extracted.Time
	}

	if err := intent.Validate(); err != nil {
		return domain.ParsedIntent{}, err
	}
	return intent, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("model returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("model returned empty content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.New("model returned empty content")
	}
	return sb.String(), nil
}

var _ IntentParser = (*GeminiParser)(nil)
