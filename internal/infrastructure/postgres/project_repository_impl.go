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

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, user_id, name, description, start_date, end_date, bullets, technologies,
	skills, url, achievements, tags, created_at, updated_at`

func scanProject(row pgx.Row, p *entity.ProjectEntry) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
		&p.Bullets, &p.Technologies, &p.Skills, &p.URL, &p.Achievements, &p.Tags,
		&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ProjectEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM project_entries
		WHERE user_id = $1
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ProjectEntry{}
	for rows.Next() {
		var p entity.ProjectEntry
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProjectEntry, error) {
	p := &entity.ProjectEntry{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+projectColumns+`
		FROM project_entries
		WHERE id = $1
	`, id)
	if err := scanProject(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.ProjectEntry) error {
	normalizeProject(p)
	row := r.pool.QueryRow(ctx, `
		INSERT INTO project_entries
			(user_id, name, description, start_date, end_date, bullets, technologies, skills, url, achievements, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Name, p.Description, p.StartDate, p.EndDate, p.Bullets,
		p.Technologies, p.Skills, p.URL, p.Achievements, p.Tags)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) Update(ctx context.Context, p *entity.ProjectEntry) error {
	normalizeProject(p)
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE project_entries
		SET name = $1, description = $2, start_date = $3, end_date = $4, bullets = $5,
			technologies = $6, skills = $7, url = $8, achievements = $9, tags = $10, updated_at = $11
		WHERE id = $12
	`, p.Name, p.Description, p.StartDate, p.EndDate, p.Bullets,
		p.Technologies, p.Skills, p.URL, p.Achievements, p.Tags, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM project_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM project_entries WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func normalizeProject(p *entity.ProjectEntry) {
	if p.Bullets == nil {
		p.Bullets = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Skills == nil {
		p.Skills = []uuid.UUID{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
