package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/pkg/ai"
)

func newIngestService(model ai.ChatModel) (*IngestService, *memProgressRepo) {
	progress := &memProgressRepo{}
	return &IngestService{
		Vault:    newTestVaultService(),
		Progress: progress,
		AI:       ai.NewGateway(model),
	}, progress
}

func extractionReply(t *testing.T, ex entity.ExtractedEntities) string {
	t.Helper()
	b, err := json.Marshal(ex)
	require.NoError(t, err)
	return string(b)
}

func TestIngestRejectsEmptyText(t *testing.T) {
	svc, _ := newIngestService(&stubModel{reply: "{}"})

	_, err := svc.Ingest(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestIngestPersistsExtractedEntries(t *testing.T) {
	ex := entity.ExtractedEntities{
		Education: []entity.EducationDraft{{
			Institution: "UC Berkeley",
			Degree:      "Bachelor of Science",
			EndDate:     "2024-05-20",
		}},
		Experience: []entity.ExperienceDraft{{
			Title:          "Software Engineering Intern",
			Company:        "Google",
			EmploymentType: "internship",
			StartDate:      "2024-05-01",
			EndDate:        "2024-08-15",
		}},
		Skills: []entity.SkillDraft{
			{Name: "Go", Category: "programming"},
			{Name: "Docker"},
		},
		Projects: []entity.ProjectDraft{{
			Name:      "Course Planner",
			StartDate: "2024-01-10",
			Skills:    []string{"go"},
		}},
		Awards: []entity.AwardDraft{{Title: "Hackathon Winner", Date: "2024-03-02"}},
	}
	svc, progress := newIngestService(&stubModel{reply: extractionReply(t, ex)})

	res, err := svc.Ingest(context.Background(), "I graduated and finished my Google internship")
	require.NoError(t, err)

	assert.Equal(t, entity.CreatedCounts{
		Education:  1,
		Experience: 1,
		Projects:   1,
		Skills:     2,
		Awards:     1,
	}, res.Created)

	// Audit record always persisted with the raw text.
	require.Len(t, progress.rows, 1)
	assert.Equal(t, "I graduated and finished my Google internship", progress.rows[0].RawText)
	require.NotNil(t, progress.rows[0].ProcessedAt)

	ctx := context.Background()
	user, err := svc.Vault.EnsureUser(ctx)
	require.NoError(t, err)

	// Education start inferred 4 years before the end date.
	edu, err := svc.Vault.ListEducation(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, edu, 1)
	assert.Equal(t, 2020, edu[0].StartDate.Year())
	require.NotNil(t, edu[0].EndDate)

	// Project references the newly created Go skill by id.
	skills, err := svc.Vault.ListSkills(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	var goID = skills[0].ID
	for _, sk := range skills {
		if sk.Name == "Go" {
			goID = sk.ID
		}
	}
	projects, err := svc.Vault.ListProjects(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Skills, 1)
	assert.Equal(t, goID, projects[0].Skills[0])
}

func TestIngestGraduationScenario(t *testing.T) {
	ex := entity.ExtractedEntities{
		Education: []entity.EducationDraft{{
			Institution:  "University of Toronto",
			Degree:       "Bachelor of Science",
			FieldOfStudy: "Computer Science",
			EndDate:      "2026-06-01",
		}},
	}
	svc, progress := newIngestService(&stubModel{reply: extractionReply(t, ex)})

	ctx := context.Background()
	res, err := svc.Ingest(ctx,
		"I just graduated from University of Toronto with a Bachelor of Science in Computer Science")
	require.NoError(t, err)
	assert.Equal(t, entity.CreatedCounts{Education: 1}, res.Created)
	require.Len(t, res.Update.Extracted.Education, 1)
	require.NotNil(t, progress.rows[0].ProcessedAt)

	user, err := svc.Vault.EnsureUser(ctx)
	require.NoError(t, err)
	edu, err := svc.Vault.ListEducation(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, edu, 1)
	assert.Equal(t, "University of Toronto", edu[0].Institution)
	assert.Equal(t, "Computer Science", edu[0].FieldOfStudy)
	require.NotNil(t, edu[0].EndDate)
	assert.Equal(t, edu[0].EndDate.AddDate(-4, 0, 0), edu[0].StartDate)
}

func TestIngestFallsBackOnModelFailure(t *testing.T) {
	svc, progress := newIngestService(&stubModel{err: errors.New("upstream down")})

	res, err := svc.Ingest(context.Background(), "shipped a new feature today")
	require.NoError(t, err)

	assert.True(t, res.Update.Extracted.Empty())
	assert.Equal(t, entity.CreatedCounts{}, res.Created)
	require.Len(t, progress.rows, 1)
	assert.Equal(t, "shipped a new feature today", progress.rows[0].RawText)
}

func TestIngestFallsBackOnUnparseableReply(t *testing.T) {
	svc, progress := newIngestService(&stubModel{reply: "sorry, I cannot help with that"})

	res, err := svc.Ingest(context.Background(), "learned kubernetes")
	require.NoError(t, err)
	assert.True(t, res.Update.Extracted.Empty())
	require.Len(t, progress.rows, 1)
}

func TestIngestSkipsEntriesWithoutDatesOrNames(t *testing.T) {
	ex := entity.ExtractedEntities{
		Education: []entity.EducationDraft{
			{Institution: "MIT", Degree: "B.S."},      // no dates
			{Degree: "B.S.", StartDate: "2020-09-01"}, // no institution
		},
		Experience: []entity.ExperienceDraft{
			{Title: "Engineer"}, // no dates
		},
		Projects: []entity.ProjectDraft{
			{Description: "mystery project", StartDate: "2024-01-01"}, // no name
		},
		Skills: []entity.SkillDraft{{Name: "  "}},
	}
	svc, _ := newIngestService(&stubModel{reply: extractionReply(t, ex)})

	res, err := svc.Ingest(context.Background(), "vague update")
	require.NoError(t, err)
	assert.Equal(t, entity.CreatedCounts{}, res.Created)
}

func TestIngestDeduplicatesSkillsAgainstVault(t *testing.T) {
	ex := entity.ExtractedEntities{
		Skills: []entity.SkillDraft{
			{Name: "go"},   // exists as "Go", case-insensitive
			{Name: "Rust"}, // new
			{Name: "rust"}, // duplicate within batch
		},
	}
	svc, _ := newIngestService(&stubModel{reply: extractionReply(t, ex)})

	ctx := context.Background()
	user, err := svc.Vault.EnsureUser(ctx)
	require.NoError(t, err)
	_, err = svc.Vault.CreateSkill(ctx, &entity.SkillEntry{UserID: user.ID, Name: "Go"})
	require.NoError(t, err)

	res, err := svc.Ingest(ctx, "picked up rust")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created.Skills)

	skills, err := svc.Vault.ListSkills(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestIngestAwardWithoutDateDefaultsToToday(t *testing.T) {
	ex := entity.ExtractedEntities{
		Awards: []entity.AwardDraft{{Title: "Employee of the Month"}},
	}
	svc, _ := newIngestService(&stubModel{reply: extractionReply(t, ex)})

	ctx := context.Background()
	res, err := svc.Ingest(ctx, "got recognized at work")
	require.NoError(t, err)
	require.Equal(t, 1, res.Created.Awards)

	user, err := svc.Vault.EnsureUser(ctx)
	require.NoError(t, err)
	awards, err := svc.Vault.ListAwards(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.False(t, awards[0].Date.IsZero())
	assert.Equal(t, entity.AwardCategoryOther, awards[0].Category)
}
