package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	repo "github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/pkg/helpers"
)

const statsCacheTTL = 60 * time.Second

// VaultService owns the user profile and all five entry collections.
// Every operation resolves the single demo user first; the user row is
// created lazily on first access.
type VaultService struct {
	Users      repo.UserRepository
	Education  repo.EducationRepository
	Experience repo.ExperienceRepository
	Projects   repo.ProjectRepository
	Skills     repo.SkillRepository
	Awards     repo.AwardRepository

	Redis  *redis.Client
	Logger *logrus.Logger

	DemoFullName string
	DemoSummary  string
}

func statsKey(userID uuid.UUID) string {
	return "vault:stats:" + userID.String()
}

// EnsureUser returns the demo user, creating the row on first call.
func (s *VaultService) EnsureUser(ctx context.Context) (*entity.User, error) {
	u, err := s.Users.GetFirst(ctx)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u = &entity.User{
		FullName: s.DemoFullName,
		Summary:  s.DemoSummary,
		Links:    []entity.Link{},
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("created demo user")
	}
	return u, nil
}

type ProfileInput struct {
	FullName *string
	Email    *string
	Phone    *string
	Location *string
	Summary  *string
	Links    []entity.Link
}

func (s *VaultService) GetProfile(ctx context.Context) (*entity.User, error) {
	return s.EnsureUser(ctx)
}

// UpdateProfile applies the provided fields; nil pointers leave the
// current value alone. Links, when present, replace the whole list.
func (s *VaultService) UpdateProfile(ctx context.Context, in ProfileInput) (*entity.User, error) {
	u, err := s.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		if strings.TrimSpace(*in.FullName) == "" {
			return nil, fmt.Errorf("%w: fullName must not be empty", ErrValidation)
		}
		u.FullName = *in.FullName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Location != nil {
		u.Location = *in.Location
	}
	if in.Summary != nil {
		u.Summary = *in.Summary
	}
	if in.Links != nil {
		u.Links = in.Links
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// LoadVault reads every collection for the user. Used by the stats
// endpoint and as context for all AI calls.
func (s *VaultService) LoadVault(ctx context.Context, userID uuid.UUID) (*entity.Vault, error) {
	edu, err := s.Education.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	exp, err := s.Experience.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	prj, err := s.Projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	skl, err := s.Skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	awd, err := s.Awards.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.Vault{
		Education:  edu,
		Experience: exp,
		Projects:   prj,
		Skills:     skl,
		Awards:     awd,
	}, nil
}

// Stats counts entries per collection. Results are cached in Redis for a
// minute; any write through this service drops the cache.
func (s *VaultService) Stats(ctx context.Context, userID uuid.UUID) (*entity.VaultStats, error) {
	key := statsKey(userID)
	if s.Redis != nil {
		var st entity.VaultStats
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &st); err == nil && ok {
			return &st, nil
		}
	}

	degrees, err := s.Education.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	experiences, err := s.Experience.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	projects, err := s.Projects.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.Skills.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	awards, err := s.Awards.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	st := &entity.VaultStats{
		Degrees:     degrees,
		Experiences: experiences,
		Projects:    projects,
		Skills:      skills,
		Awards:      awards,
		Total:       degrees + experiences + projects + skills + awards,
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, st, statsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("stats cache write failed")
		}
	}
	return st, nil
}

func (s *VaultService) dropStatsCache(ctx context.Context, userID uuid.UUID) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, statsKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("stats cache invalidation failed")
	}
}

// --- education ---

func (s *VaultService) ListEducation(ctx context.Context, userID uuid.UUID) ([]entity.EducationEntry, error) {
	return s.Education.ListByUser(ctx, userID)
}

func (s *VaultService) CreateEducation(ctx context.Context, e *entity.EducationEntry) (*entity.EducationEntry, error) {
	if strings.TrimSpace(e.Institution) == "" || strings.TrimSpace(e.Degree) == "" {
		return nil, fmt.Errorf("%w: institution and degree are required", ErrValidation)
	}
	if e.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrValidation)
	}
	if err := s.Education.Create(ctx, e); err != nil {
		return nil, err
	}
	s.dropStatsCache(ctx, e.UserID)
	return e, nil
}

type EducationInput struct {
	Institution  *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *time.Time
	EndDate      *time.Time
	GPA          *float64
	Description  *string
	Achievements []string
	Tags         []string
}

func (s *VaultService) UpdateEducation(ctx context.Context, id uuid.UUID, in EducationInput) (*entity.EducationEntry, error) {
	e, err := s.Education.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Institution != nil {
		e.Institution = *in.Institution
	}
	if in.Degree != nil {
		e.Degree = *in.Degree
	}
	if in.FieldOfStudy != nil {
		e.FieldOfStudy = *in.FieldOfStudy
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.GPA != nil {
		e.GPA = in.GPA
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Achievements != nil {
		e.Achievements = in.Achievements
	}
	if in.Tags != nil {
		e.Tags = in.Tags
	}
	if err := s.Education.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *VaultService) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	e, err := s.Education.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Education.Delete(ctx, id); err != nil {
		return err
	}
	s.dropStatsCache(ctx, e.UserID)
	return nil
}

// --- experience ---

func (s *VaultService) ListExperience(ctx context.Context, userID uuid.UUID) ([]entity.ExperienceEntry, error) {
	return s.Experience.ListByUser(ctx, userID)
}

func (s *VaultService) CreateExperience(ctx context.Context, e *entity.ExperienceEntry) (*entity.ExperienceEntry, error) {
	if strings.TrimSpace(e.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if e.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrValidation)
	}
	if e.EmploymentType == "" {
		e.EmploymentType = entity.EmploymentFullTime
	}
	if err := s.Experience.Create(ctx, e); err != nil {
		return nil, err
	}
	s.dropStatsCache(ctx, e.UserID)
	return e, nil
}

type ExperienceInput struct {
	Title          *string
	Company        *string
	Location       *string
	EmploymentType *string
	StartDate      *time.Time
	EndDate        *time.Time
	Bullets        []string
	Skills         []uuid.UUID
	Description    *string
	Achievements   []string
	Tags           []string
}

func (s *VaultService) UpdateExperience(ctx context.Context, id uuid.UUID, in ExperienceInput) (*entity.ExperienceEntry, error) {
	e, err := s.Experience.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Company != nil {
		e.Company = *in.Company
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.EmploymentType != nil {
		e.EmploymentType = *in.EmploymentType
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.Bullets != nil {
		e.Bullets = in.Bullets
	}
	if in.Skills != nil {
		e.Skills = in.Skills
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Achievements != nil {
		e.Achievements = in.Achievements
	}
	if in.Tags != nil {
		e.Tags = in.Tags
	}
	if err := s.Experience.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *VaultService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	e, err := s.Experience.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Experience.Delete(ctx, id); err != nil {
		return err
	}
	s.dropStatsCache(ctx, e.UserID)
	return nil
}

// --- projects ---

func (s *VaultService) ListProjects(ctx context.Context, userID uuid.UUID) ([]entity.ProjectEntry, error) {
	return s.Projects.ListByUser(ctx, userID)
}

func (s *VaultService) CreateProject(ctx context.Context, p *entity.ProjectEntry) (*entity.ProjectEntry, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrValidation)
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	s.dropStatsCache(ctx, p.UserID)
	return p, nil
}

type ProjectInput struct {
	Name         *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Bullets      []string
	Technologies []string
	Skills       []uuid.UUID
	URL          *string
	Achievements []string
	Tags         []string
}

func (s *VaultService) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (*entity.ProjectEntry, error) {
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if in.Bullets != nil {
		p.Bullets = in.Bullets
	}
	if in.Technologies != nil {
		p.Technologies = in.Technologies
	}
	if in.Skills != nil {
		p.Skills = in.Skills
	}
	if in.URL != nil {
		p.URL = *in.URL
	}
	if in.Achievements != nil {
		p.Achievements = in.Achievements
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if err := s.Projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *VaultService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Projects.Delete(ctx, id); err != nil {
		return err
	}
	s.dropStatsCache(ctx, p.UserID)
	return nil
}

// --- skills ---

func (s *VaultService) ListSkills(ctx context.Context, userID uuid.UUID) ([]entity.SkillEntry, error) {
	return s.Skills.ListByUser(ctx, userID)
}

func (s *VaultService) CreateSkill(ctx context.Context, sk *entity.SkillEntry) (*entity.SkillEntry, error) {
	if strings.TrimSpace(sk.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if sk.Category == "" {
		sk.Category = entity.SkillCategoryOther
	}
	if sk.Proficiency == "" {
		sk.Proficiency = entity.ProficiencyIntermediate
	}
	if err := s.Skills.Create(ctx, sk); err != nil {
		return nil, err
	}
	s.dropStatsCache(ctx, sk.UserID)
	return sk, nil
}

type SkillInput struct {
	Name              *string
	Category          *string
	Proficiency       *string
	YearsOfExperience *float64
	VerifiedBy        []uuid.UUID
	Tags              []string
}

func (s *VaultService) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (*entity.SkillEntry, error) {
	sk, err := s.Skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		sk.Name = *in.Name
	}
	if in.Category != nil {
		sk.Category = *in.Category
	}
	if in.Proficiency != nil {
		sk.Proficiency = *in.Proficiency
	}
	if in.YearsOfExperience != nil {
		sk.YearsOfExperience = in.YearsOfExperience
	}
	if in.VerifiedBy != nil {
		sk.VerifiedBy = in.VerifiedBy
	}
	if in.Tags != nil {
		sk.Tags = in.Tags
	}
	if err := s.Skills.Update(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// DeleteSkill removes the skill row only. Experience and project entries
// that reference it keep the dangling id.
func (s *VaultService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	sk, err := s.Skills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Skills.Delete(ctx, id); err != nil {
		return err
	}
	s.dropStatsCache(ctx, sk.UserID)
	return nil
}

// --- awards ---

func (s *VaultService) ListAwards(ctx context.Context, userID uuid.UUID) ([]entity.AwardEntry, error) {
	return s.Awards.ListByUser(ctx, userID)
}

func (s *VaultService) CreateAward(ctx context.Context, a *entity.AwardEntry) (*entity.AwardEntry, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if a.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if a.Category == "" {
		a.Category = entity.AwardCategoryOther
	}
	if err := s.Awards.Create(ctx, a); err != nil {
		return nil, err
	}
	s.dropStatsCache(ctx, a.UserID)
	return a, nil
}

type AwardInput struct {
	Title       *string
	Issuer      *string
	Date        *time.Time
	Description *string
	Category    *string
	Tags        []string
}

func (s *VaultService) UpdateAward(ctx context.Context, id uuid.UUID, in AwardInput) (*entity.AwardEntry, error) {
	a, err := s.Awards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Issuer != nil {
		a.Issuer = *in.Issuer
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if in.Tags != nil {
		a.Tags = in.Tags
	}
	if err := s.Awards.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *VaultService) DeleteAward(ctx context.Context, id uuid.UUID) error {
	a, err := s.Awards.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Awards.Delete(ctx, id); err != nil {
		return err
	}
	s.dropStatsCache(ctx, a.UserID)
	return nil
}
