package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexchen/identity-vault/internal/domain/entity"
)

// ProgressRepository persists progress updates. Updates are immutable in
// the ingestion flow; SetEnhancement is the one later write, performed by
// the enhancement worker.
type ProgressRepository interface {
	Create(ctx context.Context, p *entity.ProgressUpdate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressUpdate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ProgressUpdate, error)
	Latest(ctx context.Context, userID uuid.UUID) (*entity.ProgressUpdate, error)
	SetEnhancement(ctx context.Context, id uuid.UUID, enh *entity.Enhancement) error
}
