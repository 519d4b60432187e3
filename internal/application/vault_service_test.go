package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
)

func TestEnsureUserCreatesDemoProfileOnce(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()

	u1, err := svc.EnsureUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", u1.FullName)

	u2, err := svc.EnsureUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()

	loc := "Seattle, WA"
	u, err := svc.UpdateProfile(ctx, ProfileInput{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Seattle, WA", u.Location)
	assert.Equal(t, "Alex Chen", u.FullName)

	empty := ""
	_, err = svc.UpdateProfile(ctx, ProfileInput{FullName: &empty})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreateEducationValidation(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	_, err = svc.CreateEducation(ctx, &entity.EducationEntry{UserID: u.ID, Institution: "MIT"})
	assert.True(t, errors.Is(err, ErrValidation))

	e, err := svc.CreateEducation(ctx, &entity.EducationEntry{
		UserID:      u.ID,
		Institution: "MIT",
		Degree:      "B.S.",
		StartDate:   time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, e.ID)
}

func TestCreateEducationAcceptsEndBeforeStart(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	end := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreateEducation(ctx, &entity.EducationEntry{
		UserID:      u.ID,
		Institution: "MIT",
		Degree:      "B.S.",
		StartDate:   time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
	})
	assert.NoError(t, err)
}

func TestDeleteEducationTwiceReturnsNotFound(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	e, err := svc.CreateEducation(ctx, &entity.EducationEntry{
		UserID:      u.ID,
		Institution: "MIT",
		Degree:      "B.S.",
		StartDate:   time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEducation(ctx, e.ID))
	err = svc.DeleteEducation(ctx, e.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCreateSkillAppliesDefaults(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	sk, err := svc.CreateSkill(ctx, &entity.SkillEntry{UserID: u.ID, Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, entity.SkillCategoryOther, sk.Category)
	assert.Equal(t, entity.ProficiencyIntermediate, sk.Proficiency)
}

func TestDeleteSkillLeavesReferences(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	sk, err := svc.CreateSkill(ctx, &entity.SkillEntry{UserID: u.ID, Name: "Go"})
	require.NoError(t, err)
	exp, err := svc.CreateExperience(ctx, &entity.ExperienceEntry{
		UserID:    u.ID,
		Title:     "Backend Engineer",
		StartDate: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		Skills:    []uuid.UUID{sk.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSkill(ctx, sk.ID))
	_, err = svc.Skills.GetByID(ctx, sk.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// The experience keeps the dangling reference.
	got, err := svc.Experience.GetByID(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{sk.ID}, got.Skills)
}

func TestStatsCountsEverything(t *testing.T) {
	svc := newTestVaultService()
	ctx := context.Background()
	u, err := svc.EnsureUser(ctx)
	require.NoError(t, err)

	_, err = svc.CreateSkill(ctx, &entity.SkillEntry{UserID: u.ID, Name: "Go"})
	require.NoError(t, err)
	_, err = svc.CreateAward(ctx, &entity.AwardEntry{
		UserID: u.ID,
		Title:  "Hackathon Winner",
		Date:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	st, err := svc.Stats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Skills)
	assert.Equal(t, 1, st.Awards)
	assert.Equal(t, 0, st.Degrees)
	assert.Equal(t, 2, st.Total)
}

func TestUpdateAwardNotFound(t *testing.T) {
	svc := newTestVaultService()
	title := "x"
	_, err := svc.UpdateAward(context.Background(), uuid.New(), AwardInput{Title: &title})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
