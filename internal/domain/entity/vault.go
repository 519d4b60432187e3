package entity

// Vault is a read-only snapshot of every entry type for one user, as
// loaded at the start of an ingestion or AI call. Empty slices are valid.
type Vault struct {
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     []SkillEntry      `json:"skills"`
	Awards     []AwardEntry      `json:"awards"`
}

// VaultStats holds per-type entry counts for the stats endpoint.
type VaultStats struct {
	Degrees     int `json:"degrees"`
	Experiences int `json:"experiences"`
	Projects    int `json:"projects"`
	Skills      int `json:"skills"`
	Awards      int `json:"awards"`
	Total       int `json:"total"`
}
