package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	repo "github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/pkg/ai"
)

// LinkedInService turns the most recent progress update into per-section
// LinkedIn update suggestions.
type LinkedInService struct {
	Vault    *VaultService
	Progress repo.ProgressRepository
	AI       *ai.Gateway
}

// Suggestions derives advice from a progress update against the current
// vault. A nil updateID means the most recent update. Returns
// repository.ErrNotFound when the referenced update does not exist, or
// when the user has never posted one.
func (s *LinkedInService) Suggestions(ctx context.Context, updateID *uuid.UUID) (*ai.LinkedInSuggestions, error) {
	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	var latest *entity.ProgressUpdate
	if updateID != nil {
		latest, err = s.Progress.GetByID(ctx, *updateID)
	} else {
		latest, err = s.Progress.Latest(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}
	vault, err := s.Vault.LoadVault(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	prompt := ai.LinkedInSuggestionsPrompt(latest.Extracted, vault, latest.RawText)
	var out ai.LinkedInSuggestions
	if err := s.AI.GenerateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
