package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen/identity-vault/internal/interview"
	"github.com/alexchen/identity-vault/pkg/ai"
)

func newInterviewService(model ai.ChatModel) *InterviewService {
	return &InterviewService{
		Vault:    newTestVaultService(),
		AI:       ai.NewGateway(model),
		Sessions: interview.NewRegistry(time.Hour),
	}
}

func TestInterviewStartRequiresPosition(t *testing.T) {
	svc := newInterviewService(&stubModel{reply: `{"question":"hi","type":"behavioral"}`})
	defer svc.Sessions.Close()

	_, err := svc.Start(context.Background(), ai.JobDescription{})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestInterviewFlow(t *testing.T) {
	model := &stubModel{reply: `{"question":"Tell me about yourself.","type":"behavioral"}`}
	svc := newInterviewService(model)
	defer svc.Sessions.Close()
	ctx := context.Background()

	start, err := svc.Start(ctx, ai.JobDescription{Company: "Acme", Position: "Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Tell me about yourself.", start.Question.Question)
	assert.Equal(t, 1, svc.Sessions.Len())

	model.reply = `{"question":"Why Go?","type":"technical","hint":"language tradeoffs"}`
	q, err := svc.Message(ctx, start.SessionID, "I build backend services.")
	require.NoError(t, err)
	assert.Equal(t, "Why Go?", q.Question)
	assert.Equal(t, "technical", q.Type)

	model.reply = `{"overallScore":4.2,"strengths":["clear answers"],"areasForImprovement":["more metrics"],"recommendations":["practice"],"breakdown":{"technical":4,"communication":4.5,"problemSolving":4,"culturalFit":4.3}}`
	end, err := svc.End(ctx, start.SessionID)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, end.Feedback.OverallScore, 0.001)
	// Transcript: question, answer, question.
	assert.Len(t, end.Transcript, 3)
	assert.Equal(t, "interviewer", end.Transcript[0].Role)
	assert.Equal(t, "user", end.Transcript[1].Role)

	// The completed session stays registered until TTL eviction; further
	// messages and a second end both conflict rather than vanish.
	assert.Equal(t, 1, svc.Sessions.Len())
	_, err = svc.Message(ctx, start.SessionID, "hello?")
	assert.True(t, errors.Is(err, ErrConflict))
	_, err = svc.End(ctx, start.SessionID)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestInterviewStartNotRegisteredOnModelFailure(t *testing.T) {
	svc := newInterviewService(&stubModel{err: errors.New("down")})
	defer svc.Sessions.Close()

	_, err := svc.Start(context.Background(), ai.JobDescription{Position: "SWE"})
	require.Error(t, err)
	assert.Equal(t, 0, svc.Sessions.Len())
}

func TestInterviewEndKeepsSessionOnModelFailure(t *testing.T) {
	model := &stubModel{reply: `{"question":"hi","type":"behavioral"}`}
	svc := newInterviewService(model)
	defer svc.Sessions.Close()
	ctx := context.Background()

	start, err := svc.Start(ctx, ai.JobDescription{Position: "SWE"})
	require.NoError(t, err)

	model.err = errors.New("down")
	_, err = svc.End(ctx, start.SessionID)
	require.Error(t, err)
	assert.Equal(t, 1, svc.Sessions.Len())

	// Retry succeeds once the model recovers.
	model.err = nil
	model.reply = `{"overallScore":3,"strengths":[],"areasForImprovement":[],"recommendations":[],"breakdown":{}}`
	_, err = svc.End(ctx, start.SessionID)
	require.NoError(t, err)
}

func TestInterviewMessageUnknownSession(t *testing.T) {
	svc := newInterviewService(&stubModel{reply: `{}`})
	defer svc.Sessions.Close()

	_, err := svc.Message(context.Background(), uuid.New(), "hello")
	assert.True(t, errors.Is(err, interview.ErrNotFound))
}
