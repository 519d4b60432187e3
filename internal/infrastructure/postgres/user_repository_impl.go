package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetFirst(ctx context.Context) (*entity.User, error) {
	u := &entity.User{}
	var links []byte

	row := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, location, summary, links, created_at, updated_at
		FROM users
		ORDER BY created_at
		LIMIT 1
	`)
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Location,
		&u.Summary, &links, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(links, &u.Links); err != nil {
		return nil, err
	}
	if u.Links == nil {
		u.Links = []entity.Link{}
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Links == nil {
		u.Links = []entity.Link{}
	}
	links, err := json.Marshal(u.Links)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (full_name, email, phone, location, summary, links)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.FullName, u.Email, u.Phone, u.Location, u.Summary, links)
	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	if u.Links == nil {
		u.Links = []entity.Link{}
	}
	links, err := json.Marshal(u.Links)
	if err != nil {
		return err
	}
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET full_name = $1, email = $2, phone = $3, location = $4, summary = $5, links = $6, updated_at = $7
		WHERE id = $8
	`, u.FullName, u.Email, u.Phone, u.Location, u.Summary, links, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
