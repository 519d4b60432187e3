package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	repo "github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/pkg/ai"
)

// EnhanceService polishes the extraction attached to a progress update.
// It runs inside the queue worker, never on the request path.
type EnhanceService struct {
	Progress repo.ProgressRepository
	AI       *ai.Gateway
	Logger   *logrus.Logger
}

// Enhance loads the update, asks the model for resume-ready phrasing of
// its extracted entries, and stores the result on the update. A model
// failure leaves the update untouched; the job can be retried.
func (s *EnhanceService) Enhance(ctx context.Context, job EnhancementJob) error {
	p, err := s.Progress.GetByID(ctx, job.UpdateID)
	if err != nil {
		return err
	}
	if p.Extracted.Empty() {
		if s.Logger != nil {
			s.Logger.WithField("update_id", p.ID).Info("nothing to enhance")
		}
		return nil
	}

	var enh entity.Enhancement
	if err := s.AI.GenerateJSON(ctx, ai.EnhancementPrompt(p.Extracted), &enh); err != nil {
		return err
	}
	if err := s.Progress.SetEnhancement(ctx, p.ID, &enh); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("update_id", p.ID).Info("enhancement stored")
	}
	return nil
}
