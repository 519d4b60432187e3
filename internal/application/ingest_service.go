package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	repo "github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/pkg/ai"
)

// EnhancementPublisher queues a processed update for the async
// enhancement worker.
type EnhancementPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UpdateIndexer mirrors processed updates into the search index.
type UpdateIndexer interface {
	IndexUpdate(ctx context.Context, p *entity.ProgressUpdate) error
}

// EnhancementJob is the message body handed to the worker queue.
type EnhancementJob struct {
	UpdateID uuid.UUID `json:"updateId"`
	UserID   uuid.UUID `json:"userId"`
}

// IngestResult is what one progress-update call produced.
type IngestResult struct {
	Update  *entity.ProgressUpdate `json:"progressUpdate"`
	Created entity.CreatedCounts   `json:"createdEntries"`
}

// IngestService runs the progress-update pipeline: extract entities from
// raw text, persist the audit record, fan the extraction out into vault
// entries, then hand off best-effort side work (search indexing, the
// enhancement queue).
type IngestService struct {
	Vault    *VaultService
	Progress repo.ProgressRepository
	AI       *ai.Gateway
	Queue    EnhancementPublisher
	Indexer  UpdateIndexer
	Logger   *logrus.Logger
}

// Ingest processes one free-text progress update.
//
// Extraction failures never fail the call: the update is recorded with
// an empty extraction so the raw text survives for later reprocessing.
// Persistence failures after extraction do surface, and entries created
// before the failure stay created.
func (s *IngestService) Ingest(ctx context.Context, rawText string) (*IngestResult, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}

	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	vault, err := s.Vault.LoadVault(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	extracted := s.extract(ctx, rawText, vault)
	extracted.Normalize()

	now := time.Now().UTC()
	update := &entity.ProgressUpdate{
		UserID:      user.ID,
		RawText:     rawText,
		ProcessedAt: &now,
		Extracted:   extracted,
	}
	if err := s.Progress.Create(ctx, update); err != nil {
		return nil, err
	}

	counts, err := s.persistExtraction(ctx, user.ID, vault, &extracted)
	if err != nil {
		return nil, err
	}
	s.Vault.dropStatsCache(ctx, user.ID)

	if s.Indexer != nil {
		if err := s.Indexer.IndexUpdate(ctx, update); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("update_id", update.ID).Warn("search indexing failed")
		}
	}
	if s.Queue != nil && !extracted.Empty() {
		job := EnhancementJob{UpdateID: update.ID, UserID: user.ID}
		if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("update_id", update.ID).Warn("enhancement enqueue failed")
		}
	}

	return &IngestResult{Update: update, Created: counts}, nil
}

// extract runs the model and falls back to the empty result on any
// failure. The raw text is already safe in the caller's hands.
func (s *IngestService) extract(ctx context.Context, rawText string, vault *entity.Vault) entity.ExtractedEntities {
	var out entity.ExtractedEntities
	if err := s.AI.GenerateJSON(ctx, ai.ExtractionPrompt(rawText, vault), &out); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("entity extraction failed, recording empty extraction")
		}
		return entity.EmptyExtraction()
	}
	return out
}

func (s *IngestService) persistExtraction(ctx context.Context, userID uuid.UUID, vault *entity.Vault, ex *entity.ExtractedEntities) (entity.CreatedCounts, error) {
	var counts entity.CreatedCounts

	// Skills first so experience and project entries can reference them
	// by id. Names are matched case-insensitively against the vault and
	// within the batch.
	skillIDs := make(map[string]uuid.UUID, len(vault.Skills))
	for _, sk := range vault.Skills {
		skillIDs[strings.ToLower(sk.Name)] = sk.ID
	}
	for _, d := range ex.Skills {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			s.skip("skill", "missing name")
			continue
		}
		if _, exists := skillIDs[strings.ToLower(name)]; exists {
			continue
		}
		sk := &entity.SkillEntry{
			UserID:            userID,
			Name:              name,
			Category:          d.Category,
			Proficiency:       d.Proficiency,
			YearsOfExperience: d.YearsOfExperience,
		}
		if sk.Category == "" {
			sk.Category = entity.SkillCategoryOther
		}
		if sk.Proficiency == "" {
			sk.Proficiency = entity.ProficiencyIntermediate
		}
		if err := s.Vault.Skills.Create(ctx, sk); err != nil {
			return counts, err
		}
		skillIDs[strings.ToLower(name)] = sk.ID
		counts.Skills++
	}

	for _, d := range ex.Education {
		if strings.TrimSpace(d.Institution) == "" || strings.TrimSpace(d.Degree) == "" {
			s.skip("education", "missing institution or degree")
			continue
		}
		start, end, ok := resolveDates(d.StartDate, d.EndDate, func(e time.Time) time.Time {
			return inferEducationStart(e, d.Degree)
		})
		if !ok {
			s.skip("education", "no usable dates")
			continue
		}
		e := &entity.EducationEntry{
			UserID:       userID,
			Institution:  d.Institution,
			Degree:       d.Degree,
			FieldOfStudy: d.FieldOfStudy,
			StartDate:    start,
			EndDate:      end,
			GPA:          d.GPA,
			Description:  d.Description,
			Achievements: d.Achievements,
		}
		if err := s.Vault.Education.Create(ctx, e); err != nil {
			return counts, err
		}
		counts.Education++
	}

	for _, d := range ex.Experience {
		if strings.TrimSpace(d.Title) == "" {
			s.skip("experience", "missing title")
			continue
		}
		start, end, ok := resolveDates(d.StartDate, d.EndDate, func(e time.Time) time.Time {
			return inferExperienceStart(e, d.EmploymentType)
		})
		if !ok {
			s.skip("experience", "no usable dates")
			continue
		}
		e := &entity.ExperienceEntry{
			UserID:         userID,
			Title:          d.Title,
			Company:        d.Company,
			Location:       d.Location,
			EmploymentType: d.EmploymentType,
			StartDate:      start,
			EndDate:        end,
			Bullets:        d.Bullets,
			Description:    d.Description,
			Achievements:   d.Achievements,
		}
		if e.EmploymentType == "" {
			e.EmploymentType = entity.EmploymentFullTime
		}
		if err := s.Vault.Experience.Create(ctx, e); err != nil {
			return counts, err
		}
		counts.Experience++
	}

	for _, d := range ex.Projects {
		if strings.TrimSpace(d.Name) == "" {
			s.skip("project", "missing name")
			continue
		}
		start, end, ok := resolveDates(d.StartDate, d.EndDate, inferProjectStart)
		if !ok {
			s.skip("project", "no usable dates")
			continue
		}
		p := &entity.ProjectEntry{
			UserID:       userID,
			Name:         d.Name,
			Description:  d.Description,
			StartDate:    start,
			EndDate:      end,
			Bullets:      d.Bullets,
			Technologies: d.Technologies,
			Skills:       resolveSkillRefs(d.Skills, skillIDs),
			URL:          d.URL,
			Achievements: d.Achievements,
		}
		if err := s.Vault.Projects.Create(ctx, p); err != nil {
			return counts, err
		}
		counts.Projects++
	}

	for _, d := range ex.Awards {
		if strings.TrimSpace(d.Title) == "" {
			s.skip("award", "missing title")
			continue
		}
		date, ok := parseDate(d.Date)
		if !ok {
			// Awards without a parseable date default to today.
			date = time.Now().UTC().Truncate(24 * time.Hour)
		}
		a := &entity.AwardEntry{
			UserID:      userID,
			Title:       d.Title,
			Issuer:      d.Issuer,
			Date:        date,
			Description: d.Description,
			Category:    d.Category,
		}
		if a.Category == "" {
			a.Category = entity.AwardCategoryOther
		}
		if err := s.Vault.Awards.Create(ctx, a); err != nil {
			return counts, err
		}
		counts.Awards++
	}

	return counts, nil
}

func (s *IngestService) skip(kind, reason string) {
	if s.Logger != nil {
		s.Logger.WithField("kind", kind).WithField("reason", reason).Info("skipping extracted entry")
	}
}

func resolveSkillRefs(names []string, skillIDs map[string]uuid.UUID) []uuid.UUID {
	var refs []uuid.UUID
	for _, n := range names {
		if id, ok := skillIDs[strings.ToLower(strings.TrimSpace(n))]; ok {
			refs = append(refs, id)
		}
	}
	return refs
}

// ListUpdates returns the full ingestion history, newest first.
func (s *IngestService) ListUpdates(ctx context.Context) ([]entity.ProgressUpdate, error) {
	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.Progress.ListByUser(ctx, user.ID)
}

// LatestUpdate returns the most recent progress update, or
// repository.ErrNotFound when none exist.
func (s *IngestService) LatestUpdate(ctx context.Context) (*entity.ProgressUpdate, error) {
	user, err := s.Vault.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.Progress.Latest(ctx, user.ID)
}
