package entity

import (
	"time"

	"github.com/google/uuid"
)

// EducationEntry is one degree or program in the vault.
// EndDate nil means currently enrolled.
type EducationEntry struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	GPA          *float64   `json:"gpa,omitempty"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
