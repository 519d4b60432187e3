package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionPromptIsDeterministic(t *testing.T) {
	vault := map[string]any{"skills": []string{"Go", "SQL"}}
	a := ExtractionPrompt("I shipped a side project", vault)
	b := ExtractionPrompt("I shipped a side project", vault)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "I shipped a side project")
	assert.Contains(t, a, `"Go"`)
	assert.Contains(t, a, "Return ONLY the JSON object")
}

func TestResumePromptFillsMissingJobFields(t *testing.T) {
	p := ResumePrompt(JobDescription{Position: "Backend Engineer"}, nil, nil)
	assert.Contains(t, p, "Position: Backend Engineer")
	assert.Contains(t, p, "Company: Not specified")
	assert.Contains(t, p, "Requirements: Not specified")
}

func TestInterviewQuestionPromptFirstVsFollowUp(t *testing.T) {
	job := JobDescription{Company: "Acme", Position: "SRE"}

	first := InterviewQuestionPrompt(job, nil, nil, nil, 1)
	assert.Contains(t, first, "FIRST interview question")
	assert.NotContains(t, first, "Previous Conversation")

	history := []Turn{
		{Role: "interviewer", Content: "Tell me about yourself."},
		{Role: "user", Content: "I run incident response for a payments platform."},
	}
	next := InterviewQuestionPrompt(job, nil, nil, history, 2)
	assert.Contains(t, next, "Question #2")
	assert.Contains(t, next, "Previous Conversation")
	assert.Contains(t, next, "incident response")
	assert.True(t, strings.Contains(next, "Company: Acme"))
}
