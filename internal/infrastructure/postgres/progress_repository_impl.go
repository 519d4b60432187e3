package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
)

type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

func scanProgress(row pgx.Row, p *entity.ProgressUpdate) error {
	var extracted, enhancement []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.RawText, &p.ProcessedAt,
		&extracted, &enhancement, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(extracted, &p.Extracted); err != nil {
		return err
	}
	p.Extracted.Normalize()
	if enhancement != nil {
		p.Enhancement = &entity.Enhancement{}
		if err := json.Unmarshal(enhancement, p.Enhancement); err != nil {
			return err
		}
	}
	return nil
}

const progressColumns = `id, user_id, raw_text, processed_at, extracted, enhancement, created_at, updated_at`

func (r *ProgressRepository) Create(ctx context.Context, p *entity.ProgressUpdate) error {
	p.Extracted.Normalize()
	extracted, err := json.Marshal(p.Extracted)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO progress_updates (user_id, raw_text, processed_at, extracted)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.RawText, p.ProcessedAt, extracted)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProgressRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressUpdate, error) {
	p := &entity.ProgressUpdate{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+progressColumns+`
		FROM progress_updates
		WHERE id = $1
	`, id)
	if err := scanProgress(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ProgressUpdate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress_updates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ProgressUpdate{}
	for rows.Next() {
		var p entity.ProgressUpdate
		if err := scanProgress(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProgressRepository) Latest(ctx context.Context, userID uuid.UUID) (*entity.ProgressUpdate, error) {
	p := &entity.ProgressUpdate{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+progressColumns+`
		FROM progress_updates
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if err := scanProgress(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgressRepository) SetEnhancement(ctx context.Context, id uuid.UUID, enh *entity.Enhancement) error {
	b, err := json.Marshal(enh)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE progress_updates
		SET enhancement = $1, updated_at = $2
		WHERE id = $3
	`, b, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProgressRepository = (*ProgressRepository)(nil)
