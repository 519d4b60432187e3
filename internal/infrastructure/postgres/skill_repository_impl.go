package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

const skillColumns = `id, user_id, name, category, proficiency, years_of_experience,
	verified_by, tags, created_at, updated_at`

func scanSkill(row pgx.Row, s *entity.SkillEntry) error {
	return row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Proficiency,
		&s.YearsOfExperience, &s.VerifiedBy, &s.Tags, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SkillEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+skillColumns+`
		FROM skill_entries
		WHERE user_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.SkillEntry{}
	for rows.Next() {
		var s entity.SkillEntry
		if err := scanSkill(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SkillEntry, error) {
	s := &entity.SkillEntry{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+skillColumns+`
		FROM skill_entries
		WHERE id = $1
	`, id)
	if err := scanSkill(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s *entity.SkillEntry) error {
	normalizeSkill(s)
	row := r.pool.QueryRow(ctx, `
		INSERT INTO skill_entries
			(user_id, name, category, proficiency, years_of_experience, verified_by, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.Name, s.Category, s.Proficiency, s.YearsOfExperience, s.VerifiedBy, s.Tags)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SkillRepository) Update(ctx context.Context, s *entity.SkillEntry) error {
	normalizeSkill(s)
	s.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE skill_entries
		SET name = $1, category = $2, proficiency = $3, years_of_experience = $4,
			verified_by = $5, tags = $6, updated_at = $7
		WHERE id = $8
	`, s.Name, s.Category, s.Proficiency, s.YearsOfExperience, s.VerifiedBy, s.Tags, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// No cleanup of experience/project skills references: dangling ids
	// are accepted behavior.
	res, err := r.pool.Exec(ctx, `DELETE FROM skill_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM skill_entries WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func normalizeSkill(s *entity.SkillEntry) {
	if s.VerifiedBy == nil {
		s.VerifiedBy = []uuid.UUID{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

var _ repository.SkillRepository = (*SkillRepository)(nil)
