package entity

import (
	"time"

	"github.com/google/uuid"
)

// Draft types mirror what the extraction model returns: partial entries
// with dates as YYYY-MM-DD strings that may be absent. Each entry type
// gets its own struct rather than an untyped map, so downstream code can
// rely on field names even though the values are best-effort.

type EducationDraft struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type ExperienceDraft struct {
	Title          string   `json:"title"`
	Company        string   `json:"company,omitempty"`
	Location       string   `json:"location,omitempty"`
	EmploymentType string   `json:"employmentType,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
	Description    string   `json:"description,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

type ProjectDraft struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	URL          string   `json:"url,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type SkillDraft struct {
	Name              string   `json:"name"`
	Category          string   `json:"category,omitempty"`
	Proficiency       string   `json:"proficiency,omitempty"`
	YearsOfExperience *float64 `json:"yearsOfExperience,omitempty"`
}

type AwardDraft struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ExtractedEntities is the full extraction result for one progress
// update, keyed the way the model is asked to key it.
type ExtractedEntities struct {
	Education  []EducationDraft  `json:"education"`
	Experience []ExperienceDraft `json:"experience"`
	Projects   []ProjectDraft    `json:"projects"`
	Skills     []SkillDraft      `json:"skills"`
	Awards     []AwardDraft      `json:"awards"`
}

// EmptyExtraction is the fallback result recorded when the model call
// fails: all slices present and empty, never nil.
func EmptyExtraction() ExtractedEntities {
	return ExtractedEntities{
		Education:  []EducationDraft{},
		Experience: []ExperienceDraft{},
		Projects:   []ProjectDraft{},
		Skills:     []SkillDraft{},
		Awards:     []AwardDraft{},
	}
}

// Normalize replaces nil slices with empty ones so the stored document
// always carries every key.
func (e *ExtractedEntities) Normalize() {
	if e.Education == nil {
		e.Education = []EducationDraft{}
	}
	if e.Experience == nil {
		e.Experience = []ExperienceDraft{}
	}
	if e.Projects == nil {
		e.Projects = []ProjectDraft{}
	}
	if e.Skills == nil {
		e.Skills = []SkillDraft{}
	}
	if e.Awards == nil {
		e.Awards = []AwardDraft{}
	}
}

// Empty reports whether nothing was extracted at all.
func (e *ExtractedEntities) Empty() bool {
	return len(e.Education) == 0 && len(e.Experience) == 0 &&
		len(e.Projects) == 0 && len(e.Skills) == 0 && len(e.Awards) == 0
}

// Enhancement holds the polished variants written by the enhancement
// worker. Field names follow the stored document shape.
type Enhancement struct {
	Education        []EducationDraft  `json:"polishedEducation,omitempty"`
	Experience       []ExperienceDraft `json:"polishedExperience,omitempty"`
	Projects         []ProjectDraft    `json:"polishedProjects,omitempty"`
	Awards           []AwardDraft      `json:"polishedAwards,omitempty"`
	IdentifiedSkills []string          `json:"identifiedSkills,omitempty"`
}

// ProgressUpdate is the immutable audit record of one ingestion call.
// ProcessedAt is set once extraction completes (even when it fell back to
// the empty result). Enhancement is filled in later by the worker, or
// never.
type ProgressUpdate struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	RawText     string            `json:"rawText"`
	ProcessedAt *time.Time        `json:"processedAt"`
	Extracted   ExtractedEntities `json:"extractedEntities"`
	Enhancement *Enhancement      `json:"aiEnhancement,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CreatedCounts reports how many entries of each type one ingestion call
// persisted.
type CreatedCounts struct {
	Education  int `json:"education"`
	Experience int `json:"experience"`
	Projects   int `json:"projects"`
	Skills     int `json:"skills"`
	Awards     int `json:"awards"`
}
