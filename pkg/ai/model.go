package ai

import (
	"context"
	"errors"
)

// ChatModel is a minimal abstraction over a hosted generative-text API.
// It hides the concrete provider from the rest of the application.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error taxonomy for model calls. Handlers and the ingestion pipeline
// branch on these with errors.Is.
var (
	// ErrNotConfigured means no API credential is set. Operator-fixable.
	ErrNotConfigured = errors.New("ai: model credential not configured")
	// ErrUpstream wraps any transport or provider failure.
	ErrUpstream = errors.New("ai: upstream model call failed")
	// ErrParse means the model reply could not be parsed as JSON.
	ErrParse = errors.New("ai: model response is not valid JSON")
)
