package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexchen/identity-vault/internal/domain/entity"
)

// UserRepository defines the interface for user profile persistence.
// The demo deployment keeps a single row, so reads fetch the first user.
type UserRepository interface {
	GetFirst(ctx context.Context) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}

// EducationRepository persists education entries, listed newest start first.
type EducationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.EducationEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EducationEntry, error)
	Create(ctx context.Context, e *entity.EducationEntry) error
	Update(ctx context.Context, e *entity.EducationEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// ExperienceRepository persists experience entries, listed newest start first.
type ExperienceRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ExperienceEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExperienceEntry, error)
	Create(ctx context.Context, e *entity.ExperienceEntry) error
	Update(ctx context.Context, e *entity.ExperienceEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// ProjectRepository persists project entries, listed newest start first.
type ProjectRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ProjectEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProjectEntry, error)
	Create(ctx context.Context, p *entity.ProjectEntry) error
	Update(ctx context.Context, p *entity.ProjectEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// SkillRepository persists skill entries, listed by name.
type SkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SkillEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SkillEntry, error)
	Create(ctx context.Context, s *entity.SkillEntry) error
	Update(ctx context.Context, s *entity.SkillEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// AwardRepository persists award entries, listed newest date first.
type AwardRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AwardEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AwardEntry, error)
	Create(ctx context.Context, a *entity.AwardEntry) error
	Update(ctx context.Context, a *entity.AwardEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
