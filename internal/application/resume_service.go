package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexchen/identity-vault/pkg/ai"
)

// ResumeService generates a one-page resume tailored to a job
// description from the full vault.
type ResumeService struct {
	Vault *VaultService
	AI    *ai.Gateway
}

func (s *ResumeService) Generate(ctx context.Context, job ai.JobDescription) (*ai.GeneratedResume, error) {
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

	var resume ai.GeneratedResume
	if err := s.AI.GenerateJSON(ctx, ai.ResumePrompt(job, user, vault), &resume); err != nil {
		return nil, err
	}
	// The model occasionally drops the header name; the profile always
	// has one.
	if resume.Header.Name == "" {
		resume.Header.Name = user.FullName
	}
	return &resume, nil
}
