package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Generate(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func TestGenerateTextWrapsUpstreamErrors(t *testing.T) {
	g := NewGateway(&stubModel{err: errors.New("boom")})

	_, err := g.GenerateText(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestGenerateTextPassesThroughNotConfigured(t *testing.T) {
	g := NewGateway(&stubModel{err: ErrNotConfigured})

	_, err := g.GenerateText(context.Background(), "hi")
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.False(t, errors.Is(err, ErrUpstream))
}

func TestGenerateJSONDecodesReply(t *testing.T) {
	g := NewGateway(&stubModel{reply: `{"question":"tell me about yourself","type":"behavioral"}`})

	var q InterviewQuestion
	require.NoError(t, g.GenerateJSON(context.Background(), "ask", &q))
	assert.Equal(t, "tell me about yourself", q.Question)
	assert.Equal(t, "behavioral", q.Type)
}

func TestGenerateJSONParseFailure(t *testing.T) {
	g := NewGateway(&stubModel{reply: "I could not produce a result."})

	var q InterviewQuestion
	err := g.GenerateJSON(context.Background(), "ask", &q)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json block",
			raw:  "Here you go:\n```json\n{\"a\": 1}\n```\nHope that helps!",
			want: `{"a": 1}`,
		},
		{
			name: "fenced block wins over surrounding braces",
			raw:  "{not json} ```json\n{\"a\": 1}\n``` {also not}",
			want: `{"a": 1}`,
		},
		{
			name: "brace span without fence",
			raw:  "Sure! {\"a\": {\"b\": 2}} That is all.",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "raw text fallback",
			raw:  "  [1, 2, 3]  ",
			want: "[1, 2, 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.raw))
		})
	}
}
