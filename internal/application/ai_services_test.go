package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/pkg/ai"
)

func TestLinkedInSuggestionsRequiresHistory(t *testing.T) {
	svc := &LinkedInService{
		Vault:    newTestVaultService(),
		Progress: &memProgressRepo{},
		AI:       ai.NewGateway(&stubModel{reply: "{}"}),
	}

	_, err := svc.Suggestions(context.Background(), nil)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestLinkedInSuggestionsFromLatestUpdate(t *testing.T) {
	model := &stubModel{reply: `{
		"education": {"shouldUpdate": true, "suggestedEntry": {"institution": "UC Berkeley", "program": "B.S. Computer Science", "duration": "2020 - 2024", "description": "Graduated"}},
		"position": {"shouldUpdate": false},
		"skills": {"shouldUpdate": true, "add": ["Go"], "reason": "mentioned in update"},
		"post": {"shouldUpdate": true, "tone": "Enthusiastic", "content": "Excited to share...", "suggestedHashtags": ["#graduation"]}
	}`}
	vault := newTestVaultService()
	progress := &memProgressRepo{}
	svc := &LinkedInService{Vault: vault, Progress: progress, AI: ai.NewGateway(model)}

	ctx := context.Background()
	user, err := vault.EnsureUser(ctx)
	require.NoError(t, err)
	require.NoError(t, progress.Create(ctx, &entity.ProgressUpdate{
		UserID:    user.ID,
		RawText:   "I graduated from Berkeley",
		Extracted: entity.EmptyExtraction(),
	}))

	out, err := svc.Suggestions(ctx, nil)
	require.NoError(t, err)
	assert.True(t, out.Education.ShouldUpdate)
	require.NotNil(t, out.Education.SuggestedEntry)
	assert.Equal(t, "UC Berkeley", out.Education.SuggestedEntry.Institution)
	assert.False(t, out.Position.ShouldUpdate)
	assert.Equal(t, []string{"Go"}, out.Skills.Add)
}

func TestLinkedInSuggestionsByExplicitUpdateID(t *testing.T) {
	vault := newTestVaultService()
	progress := &memProgressRepo{}
	svc := &LinkedInService{Vault: vault, Progress: progress, AI: ai.NewGateway(&stubModel{reply: "{}"})}

	ctx := context.Background()
	user, err := vault.EnsureUser(ctx)
	require.NoError(t, err)
	older := &entity.ProgressUpdate{UserID: user.ID, RawText: "older", Extracted: entity.EmptyExtraction()}
	require.NoError(t, progress.Create(ctx, older))
	require.NoError(t, progress.Create(ctx, &entity.ProgressUpdate{
		UserID: user.ID, RawText: "newer", Extracted: entity.EmptyExtraction(),
	}))

	_, err = svc.Suggestions(ctx, &older.ID)
	require.NoError(t, err)

	missing := uuid.New()
	_, err = svc.Suggestions(ctx, &missing)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestResumeGenerateRequiresPosition(t *testing.T) {
	svc := &ResumeService{Vault: newTestVaultService(), AI: ai.NewGateway(&stubModel{reply: "{}"})}

	_, err := svc.Generate(context.Background(), ai.JobDescription{Company: "Acme"})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestResumeGenerateFillsHeaderName(t *testing.T) {
	model := &stubModel{reply: `{
		"header": {"summary": "Backend-leaning generalist"},
		"education": {"sectionTitle": "Education", "entries": []},
		"experience": {"sectionTitle": "Experience", "entries": []},
		"skills": {"sectionTitle": "Skills", "bullets": ["Go, SQL"]}
	}`}
	svc := &ResumeService{Vault: newTestVaultService(), AI: ai.NewGateway(model)}

	resume, err := svc.Generate(context.Background(), ai.JobDescription{Position: "Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", resume.Header.Name)
	assert.Equal(t, "Backend-leaning generalist", resume.Header.Summary)
}

func TestResumeGeneratePropagatesModelErrors(t *testing.T) {
	svc := &ResumeService{Vault: newTestVaultService(), AI: ai.NewGateway(&stubModel{err: ai.ErrNotConfigured})}

	_, err := svc.Generate(context.Background(), ai.JobDescription{Position: "SWE"})
	assert.True(t, errors.Is(err, ai.ErrNotConfigured))
}

func TestEnhanceStoresPolishedEntities(t *testing.T) {
	progress := &memProgressRepo{}
	ctx := context.Background()

	update := &entity.ProgressUpdate{
		UserID: uuid.New(),
		Extracted: entity.ExtractedEntities{
			Experience: []entity.ExperienceDraft{{Title: "intern", Company: "google"}},
		},
	}
	require.NoError(t, progress.Create(ctx, update))

	model := &stubModel{reply: `{"polishedExperience": [{"title": "Software Engineering Intern", "company": "Google"}], "identifiedSkills": ["Go"]}`}
	svc := &EnhanceService{Progress: progress, AI: ai.NewGateway(model)}

	require.NoError(t, svc.Enhance(ctx, EnhancementJob{UpdateID: update.ID, UserID: update.UserID}))

	got, err := progress.GetByID(ctx, update.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Enhancement)
	require.Len(t, got.Enhancement.Experience, 1)
	assert.Equal(t, "Software Engineering Intern", got.Enhancement.Experience[0].Title)
	assert.Equal(t, []string{"Go"}, got.Enhancement.IdentifiedSkills)
}

func TestEnhanceSkipsEmptyExtraction(t *testing.T) {
	progress := &memProgressRepo{}
	ctx := context.Background()
	update := &entity.ProgressUpdate{UserID: uuid.New(), Extracted: entity.EmptyExtraction()}
	require.NoError(t, progress.Create(ctx, update))

	// Model errors must not matter when there is nothing to enhance.
	svc := &EnhanceService{Progress: progress, AI: ai.NewGateway(&stubModel{err: errors.New("down")})}
	require.NoError(t, svc.Enhance(ctx, EnhancementJob{UpdateID: update.ID}))

	got, err := progress.GetByID(ctx, update.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Enhancement)
}
