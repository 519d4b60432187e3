package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/interview"
	"github.com/alexchen/identity-vault/pkg/ai"
)

// InterviewService drives mock interviews. Session state lives in the
// injected registry and is lost on restart; only the model calls leave
// the process.
type InterviewService struct {
	Vault    *VaultService
	AI       *ai.Gateway
	Sessions *interview.Registry
	Logger   *logrus.Logger
}

// StartResult is the reply to a session start.
type StartResult struct {
	SessionID uuid.UUID            `json:"sessionId"`
	Question  ai.InterviewQuestion `json:"question"`
}

// EndResult is the reply to a session end: the scored feedback plus the
// full transcript.
type EndResult struct {
	Feedback   ai.InterviewFeedback `json:"feedback"`
	Transcript []ai.Turn            `json:"transcript"`
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Start opens a session and asks the model for the opening question. No
// session is registered if the model call fails.
func (s *InterviewService) Start(ctx context.Context, job ai.JobDescription) (*StartResult, error) {
	if strings.TrimSpace(job.Position) == "" {
		return nil, fmt.Errorf("%w: position is required", ErrValidation)
	}

	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	vault, err := s.Vault.LoadVault(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var q ai.InterviewQuestion
	if err := s.AI.GenerateJSON(ctx, ai.InterviewQuestionPrompt(job, user, vault, nil, 1), &q); err != nil {
		return nil, err
	}

	sess := s.Sessions.Create(job)
	_ = s.Sessions.With(sess.ID, func(sess *interview.Session) error {
		sess.History = append(sess.History, ai.Turn{
			Role:         "interviewer",
			Content:      q.Question,
			QuestionType: q.Type,
			Timestamp:    nowStamp(),
		})
		sess.Questions = 1
		return nil
	})
	if s.Logger != nil {
		s.Logger.WithField("session_id", sess.ID).WithField("position", job.Position).Info("interview started")
	}
	return &StartResult{SessionID: sess.ID, Question: q}, nil
}

// Message records the candidate's answer and returns the next question.
func (s *InterviewService) Message(ctx context.Context, sessionID uuid.UUID, answer string) (*ai.InterviewQuestion, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	vault, err := s.Vault.LoadVault(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var q ai.InterviewQuestion
	err = s.Sessions.With(sessionID, func(sess *interview.Session) error {
		if sess.Ended {
			return fmt.Errorf("%w: %v", ErrConflict, interview.ErrEnded)
		}
		sess.History = append(sess.History, ai.Turn{
			Role:      "user",
			Content:   answer,
			Timestamp: nowStamp(),
		})

		n := sess.Questions + 1
		prompt := ai.InterviewQuestionPrompt(sess.Job, user, vault, sess.History, n)
		if err := s.AI.GenerateJSON(ctx, prompt, &q); err != nil {
			return err
		}
		sess.History = append(sess.History, ai.Turn{
			Role:         "interviewer",
			Content:      q.Question,
			QuestionType: q.Type,
			Timestamp:    nowStamp(),
		})
		sess.Questions = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// End scores the interview and marks the session completed. The session
// stays in the registry until TTL eviction so later messages answer with
// a conflict rather than not-found. The session is left unmarked if
// feedback generation fails, so the call can be retried.
func (s *InterviewService) End(ctx context.Context, sessionID uuid.UUID) (*EndResult, error) {
	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}

	var out EndResult
	err = s.Sessions.With(sessionID, func(sess *interview.Session) error {
		if sess.Ended {
			return fmt.Errorf("%w: %v", ErrConflict, interview.ErrEnded)
		}

		var fb ai.InterviewFeedback
		if err := s.AI.GenerateJSON(ctx, ai.InterviewFeedbackPrompt(sess.History, sess.Job, user), &fb); err != nil {
			return err
		}
		sess.Ended = true
		out.Feedback = fb
		out.Transcript = append([]ai.Turn(nil), sess.History...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("session_id", sessionID).Info("interview ended")
	}
	return &out, nil
}
