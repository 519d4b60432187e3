package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Gateway wraps a ChatModel with the error taxonomy and the best-effort
// "extract JSON from a possibly markdown-fenced reply" contract. It does
// no schema validation on parsed results; shape correctness is the
// caller's concern.
type Gateway struct {
	model ChatModel
}

func NewGateway(model ChatModel) *Gateway {
	return &Gateway{model: model}
}

// GenerateText runs the prompt through the model. Configuration problems
// surface as ErrNotConfigured; everything else is wrapped in ErrUpstream.
func (g *Gateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	out, err := g.model.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return out, nil
}

// GenerateJSON runs the prompt, extracts the JSON payload from the reply
// and unmarshals it into out. Extraction tries, in order: a fenced
// ```json block, the first top-level {...} span, the raw text.
func (g *Gateway) GenerateJSON(ctx context.Context, prompt string, out any) error {
	raw, err := g.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}
	payload := extractJSON(raw)
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Fenced ```json block first.
	if i := strings.Index(raw, "```json"); i >= 0 {
		rest := raw[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}

	// Greedy brace span: first "{" through last "}".
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			return raw[i : j+1]
		}
	}

	return raw
}
