package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectEntry is one project in the vault. EndDate nil means ongoing.
type ProjectEntry struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      *time.Time  `json:"endDate"`
	Bullets      []string    `json:"bullets"`
	Technologies []string    `json:"technologies"`
	Skills       []uuid.UUID `json:"skills"`
	URL          string      `json:"url,omitempty"`
	Achievements []string    `json:"achievements"`
	Tags         []string    `json:"tags"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
