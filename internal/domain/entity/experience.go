package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employment types accepted on experience entries.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentFreelance  = "freelance"
	EmploymentProject    = "project"
)

// ExperienceEntry is one role in the vault. Company may be empty for
// personal-project context; EndDate nil means current position. Skills
// holds non-owning references to SkillEntry ids — deleting a skill does
// not clean these up.
type ExperienceEntry struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"userId"`
	Title          string      `json:"title"`
	Company        string      `json:"company,omitempty"`
	Location       string      `json:"location,omitempty"`
	EmploymentType string      `json:"employmentType"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        *time.Time  `json:"endDate"`
	Bullets        []string    `json:"bullets"`
	Skills         []uuid.UUID `json:"skills"`
	Description    string      `json:"description,omitempty"`
	Achievements   []string    `json:"achievements"`
	Tags           []string    `json:"tags"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
