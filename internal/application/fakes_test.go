package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
)

// In-memory repositories for service tests. They mirror the ordering
// behavior of the real queries where tests depend on it.

type memUserRepo struct {
	user *entity.User
}

func (r *memUserRepo) GetFirst(_ context.Context) (*entity.User, error) {
	if r.user == nil {
		return nil, repository.ErrNotFound
	}
	return r.user, nil
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.user = u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if r.user == nil || r.user.ID != u.ID {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	r.user = u
	return nil
}

type memEducationRepo struct {
	rows map[uuid.UUID]*entity.EducationEntry
}

func newMemEducationRepo() *memEducationRepo {
	return &memEducationRepo{rows: map[uuid.UUID]*entity.EducationEntry{}}
}

func (r *memEducationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.EducationEntry, error) {
	out := []entity.EducationEntry{}
	for _, e := range r.rows {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *memEducationRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.EducationEntry, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEducationRepo) Create(_ context.Context, e *entity.EducationEntry) error {
	e.ID = uuid.New()
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memEducationRepo) Update(_ context.Context, e *entity.EducationEntry) error {
	if _, ok := r.rows[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memEducationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memEducationRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	out, _ := r.ListByUser(ctx, userID)
	return len(out), nil
}

type memExperienceRepo struct {
	rows map[uuid.UUID]*entity.ExperienceEntry
}

func newMemExperienceRepo() *memExperienceRepo {
	return &memExperienceRepo{rows: map[uuid.UUID]*entity.ExperienceEntry{}}
}

func (r *memExperienceRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.ExperienceEntry, error) {
	out := []entity.ExperienceEntry{}
	for _, e := range r.rows {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *memExperienceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ExperienceEntry, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memExperienceRepo) Create(_ context.Context, e *entity.ExperienceEntry) error {
	e.ID = uuid.New()
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memExperienceRepo) Update(_ context.Context, e *entity.ExperienceEntry) error {
	if _, ok := r.rows[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memExperienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memExperienceRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	out, _ := r.ListByUser(ctx, userID)
	return len(out), nil
}

type memProjectRepo struct {
	rows map[uuid.UUID]*entity.ProjectEntry
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{rows: map[uuid.UUID]*entity.ProjectEntry{}}
}

func (r *memProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.ProjectEntry, error) {
	out := []entity.ProjectEntry{}
	for _, p := range r.rows {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ProjectEntry, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) Create(_ context.Context, p *entity.ProjectEntry) error {
	p.ID = uuid.New()
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Update(_ context.Context, p *entity.ProjectEntry) error {
	if _, ok := r.rows[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memProjectRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	out, _ := r.ListByUser(ctx, userID)
	return len(out), nil
}

type memSkillRepo struct {
	rows map[uuid.UUID]*entity.SkillEntry
}

func newMemSkillRepo() *memSkillRepo {
	return &memSkillRepo{rows: map[uuid.UUID]*entity.SkillEntry{}}
}

func (r *memSkillRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.SkillEntry, error) {
	out := []entity.SkillEntry{}
	for _, s := range r.rows {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSkillRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SkillEntry, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSkillRepo) Create(_ context.Context, s *entity.SkillEntry) error {
	s.ID = uuid.New()
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSkillRepo) Update(_ context.Context, s *entity.SkillEntry) error {
	if _, ok := r.rows[s.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memSkillRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	out, _ := r.ListByUser(ctx, userID)
	return len(out), nil
}

type memAwardRepo struct {
	rows map[uuid.UUID]*entity.AwardEntry
}

func newMemAwardRepo() *memAwardRepo {
	return &memAwardRepo{rows: map[uuid.UUID]*entity.AwardEntry{}}
}

func (r *memAwardRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.AwardEntry, error) {
	out := []entity.AwardEntry{}
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memAwardRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.AwardEntry, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAwardRepo) Create(_ context.Context, a *entity.AwardEntry) error {
	a.ID = uuid.New()
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memAwardRepo) Update(_ context.Context, a *entity.AwardEntry) error {
	if _, ok := r.rows[a.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memAwardRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memAwardRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	out, _ := r.ListByUser(ctx, userID)
	return len(out), nil
}

type memProgressRepo struct {
	rows []*entity.ProgressUpdate
}

func (r *memProgressRepo) Create(_ context.Context, p *entity.ProgressUpdate) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memProgressRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ProgressUpdate, error) {
	for _, p := range r.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProgressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.ProgressUpdate, error) {
	out := []entity.ProgressUpdate{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			out = append(out, *r.rows[i])
		}
	}
	return out, nil
}

func (r *memProgressRepo) Latest(ctx context.Context, userID uuid.UUID) (*entity.ProgressUpdate, error) {
	out, _ := r.ListByUser(ctx, userID)
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return &out[0], nil
}

func (r *memProgressRepo) SetEnhancement(_ context.Context, id uuid.UUID, enh *entity.Enhancement) error {
	for _, p := range r.rows {
		if p.ID == id {
			p.Enhancement = enh
			return nil
		}
	}
	return repository.ErrNotFound
}

// stubModel returns a canned reply or error for gateway-backed services.
type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Generate(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func newTestVaultService() *VaultService {
	return &VaultService{
		Users:        &memUserRepo{},
		Education:    newMemEducationRepo(),
		Experience:   newMemExperienceRepo(),
		Projects:     newMemProjectRepo(),
		Skills:       newMemSkillRepo(),
		Awards:       newMemAwardRepo(),
		DemoFullName: "Alex Chen",
		DemoSummary:  "CS student",
	}
}
