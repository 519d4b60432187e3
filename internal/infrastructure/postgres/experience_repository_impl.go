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

type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

const experienceColumns = `id, user_id, title, company, location, employment_type, start_date, end_date,
	bullets, skills, description, achievements, tags, created_at, updated_at`

func scanExperience(row pgx.Row, e *entity.ExperienceEntry) error {
	return row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.Location, &e.EmploymentType,
		&e.StartDate, &e.EndDate, &e.Bullets, &e.Skills, &e.Description,
		&e.Achievements, &e.Tags, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExperienceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ExperienceEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+experienceColumns+`
		FROM experience_entries
		WHERE user_id = $1
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ExperienceEntry{}
	for rows.Next() {
		var e entity.ExperienceEntry
		if err := scanExperience(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExperienceEntry, error) {
	e := &entity.ExperienceEntry{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+experienceColumns+`
		FROM experience_entries
		WHERE id = $1
	`, id)
	if err := scanExperience(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *entity.ExperienceEntry) error {
	normalizeExperience(e)
	row := r.pool.QueryRow(ctx, `
		INSERT INTO experience_entries
			(user_id, title, company, location, employment_type, start_date, end_date, bullets, skills, description, achievements, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Title, e.Company, e.Location, e.EmploymentType, e.StartDate, e.EndDate,
		e.Bullets, e.Skills, e.Description, e.Achievements, e.Tags)
	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExperienceRepository) Update(ctx context.Context, e *entity.ExperienceEntry) error {
	normalizeExperience(e)
	e.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE experience_entries
		SET title = $1, company = $2, location = $3, employment_type = $4, start_date = $5, end_date = $6,
			bullets = $7, skills = $8, description = $9, achievements = $10, tags = $11, updated_at = $12
		WHERE id = $13
	`, e.Title, e.Company, e.Location, e.EmploymentType, e.StartDate, e.EndDate,
		e.Bullets, e.Skills, e.Description, e.Achievements, e.Tags, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM experience_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM experience_entries WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func normalizeExperience(e *entity.ExperienceEntry) {
	if e.Bullets == nil {
		e.Bullets = []string{}
	}
	if e.Skills == nil {
		e.Skills = []uuid.UUID{}
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

var _ repository.ExperienceRepository = (*ExperienceRepository)(nil)
