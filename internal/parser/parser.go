package parser

import (
	"context"

	"github.com/Domenick1991/courtbooking/internal/domain"
)

// IntentParser turns a free-text booking request into a ParsedIntent.
// Implementations fail with *domain.ParseError on empty input, malformed
// model output, or upstream failure.
type IntentParser interface {
	Parse(ctx context.Context, message string) (domain.ParsedIntent, error)
}
