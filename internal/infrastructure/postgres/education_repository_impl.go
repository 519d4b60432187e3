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

type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(pool *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{pool: pool}
}

const educationColumns = `id, user_id, institution, degree, field_of_study, start_date, end_date,
	gpa, description, achievements, tags, created_at, updated_at`

func scanEducation(row pgx.Row, e *entity.EducationEntry) error {
	return row.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy,
		&e.StartDate, &e.EndDate, &e.GPA, &e.Description, &e.Achievements, &e.Tags,
		&e.CreatedAt, &e.UpdatedAt)
}

func (r *EducationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.EducationEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+educationColumns+`
		FROM education_entries
		WHERE user_id = $1
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.EducationEntry{}
	for rows.Next() {
		var e entity.EducationEntry
		if err := scanEducation(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EducationEntry, error) {
	e := &entity.EducationEntry{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+educationColumns+`
		FROM education_entries
		WHERE id = $1
	`, id)
	if err := scanEducation(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EducationRepository) Create(ctx context.Context, e *entity.EducationEntry) error {
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO education_entries
			(user_id, institution, degree, field_of_study, start_date, end_date, gpa, description, achievements, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.GPA, e.Description, e.Achievements, e.Tags)
	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EducationRepository) Update(ctx context.Context, e *entity.EducationEntry) error {
	e.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE education_entries
		SET institution = $1, degree = $2, field_of_study = $3, start_date = $4, end_date = $5,
			gpa = $6, description = $7, achievements = $8, tags = $9, updated_at = $10
		WHERE id = $11
	`, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.GPA, e.Description, e.Achievements, e.Tags, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM education_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EducationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM education_entries WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

var _ repository.EducationRepository = (*EducationRepository)(nil)
