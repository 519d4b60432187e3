package entity

import (
	"time"

	"github.com/google/uuid"
)

// Skill categories.
const (
	SkillCategoryProgramming = "programming"
	SkillCategoryFramework   = "framework"
	SkillCategoryTool        = "tool"
	SkillCategoryLanguage    = "language"
	SkillCategorySoftSkill   = "soft-skill"
	SkillCategoryOther       = "other"
)

// Proficiency levels.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// SkillEntry is one skill in the vault. VerifiedBy holds non-owning
// references to ExperienceEntry ids that substantiate the skill.
type SkillEntry struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"userId"`
	Name              string      `json:"name"`
	Category          string      `json:"category"`
	Proficiency       string      `json:"proficiency"`
	YearsOfExperience *float64    `json:"yearsOfExperience,omitempty"`
	VerifiedBy        []uuid.UUID `json:"verifiedBy"`
	Tags              []string    `json:"tags"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
