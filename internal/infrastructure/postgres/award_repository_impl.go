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

type AwardRepository struct {
	pool *pgxpool.Pool
}

func NewAwardRepository(pool *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{pool: pool}
}

const awardColumns = `id, user_id, title, issuer, date, description, category, tags, created_at, updated_at`

func scanAward(row pgx.Row, a *entity.AwardEntry) error {
	return row.Scan(&a.ID, &a.UserID, &a.Title, &a.Issuer, &a.Date,
		&a.Description, &a.Category, &a.Tags, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AwardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AwardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+awardColumns+`
		FROM award_entries
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.AwardEntry{}
	for rows.Next() {
		var a entity.AwardEntry
		if err := scanAward(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AwardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AwardEntry, error) {
	a := &entity.AwardEntry{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+awardColumns+`
		FROM award_entries
		WHERE id = $1
	`, id)
	if err := scanAward(row, a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AwardRepository) Create(ctx context.Context, a *entity.AwardEntry) error {
	if a.Category == "" {
		a.Category = entity.AwardCategoryOther
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO award_entries (user_id, title, issuer, date, description, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.UserID, a.Title, a.Issuer, a.Date, a.Description, a.Category, a.Tags)
	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AwardRepository) Update(ctx context.Context, a *entity.AwardEntry) error {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE award_entries
		SET title = $1, issuer = $2, date = $3, description = $4, category = $5, tags = $6, updated_at = $7
		WHERE id = $8
	`, a.Title, a.Issuer, a.Date, a.Description, a.Category, a.Tags, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AwardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM award_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AwardRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM award_entries WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

var _ repository.AwardRepository = (*AwardRepository)(nil)
