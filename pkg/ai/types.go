package ai

// Response shapes the model is instructed to produce. Services decode
// model output into these via Gateway.GenerateJSON and pass them through
// to API responses unchanged.

type EducationSuggestion struct {
	ShouldUpdate   bool `json:"shouldUpdate"`
	SuggestedEntry *struct {
		Institution string `json:"institution"`
		Program     string `json:"program"`
		Duration    string `json:"duration"`
		Description string `json:"description"`
	} `json:"suggestedEntry,omitempty"`
}

type PositionSuggestion struct {
	ShouldUpdate    bool   `json:"shouldUpdate"`
	TargetRole      string `json:"targetRole,omitempty"`
	SuggestedBullet string `json:"suggestedBullet,omitempty"`
}

type SkillsSuggestion struct {
	ShouldUpdate bool     `json:"shouldUpdate"`
	Add          []string `json:"add,omitempty"`
	Strengthen   []string `json:"strengthen,omitempty"`
	Reason       string   `json:"reason,omitempty"`
}

type PostSuggestion struct {
	ShouldUpdate      bool     `json:"shouldUpdate"`
	Tone              string   `json:"tone,omitempty"`
	Content           string   `json:"content,omitempty"`
	SuggestedHashtags []string `json:"suggestedHashtags,omitempty"`
}

// LinkedInSuggestions groups per-section update advice for a progress
// update.
type LinkedInSuggestions struct {
	Education EducationSuggestion `json:"education"`
	Position  PositionSuggestion  `json:"position"`
	Skills    SkillsSuggestion    `json:"skills"`
	Post      PostSuggestion      `json:"post"`
}

type ResumeLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ResumeHeader struct {
	Name    string       `json:"name"`
	Email   string       `json:"email,omitempty"`
	Phone   string       `json:"phone,omitempty"`
	Links   []ResumeLink `json:"links,omitempty"`
	Summary string       `json:"summary"`
}

type ResumeEntry struct {
	DegreeName string   `json:"degreeName,omitempty"`
	Title      string   `json:"title,omitempty"`
	DateRange  string   `json:"dateRange"`
	Bullets    []string `json:"bullets"`
}

type ResumeSection struct {
	SectionTitle string        `json:"sectionTitle"`
	Entries      []ResumeEntry `json:"entries"`
}

type ResumeSkills struct {
	SectionTitle string   `json:"sectionTitle"`
	Bullets      []string `json:"bullets"`
}

// GeneratedResume is a one-page resume tailored to a job description.
type GeneratedResume struct {
	Header     ResumeHeader  `json:"header"`
	Education  ResumeSection `json:"education"`
	Experience ResumeSection `json:"experience"`
	Skills     ResumeSkills  `json:"skills"`
}

// InterviewQuestion is a single question from the mock interviewer.
type InterviewQuestion struct {
	Question string `json:"question"`
	Type     string `json:"type"`
	Hint     string `json:"hint,omitempty"`
}

// InterviewFeedback is the end-of-interview evaluation.
type InterviewFeedback struct {
	OverallScore        float64           `json:"overallScore"`
	Strengths           []string          `json:"strengths"`
	AreasForImprovement []string          `json:"areasForImprovement"`
	Recommendations     []string          `json:"recommendations"`
	Breakdown           FeedbackBreakdown `json:"breakdown"`
}

type FeedbackBreakdown struct {
	Technical      float64 `json:"technical"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problemSolving"`
	CulturalFit    float64 `json:"culturalFit"`
}
