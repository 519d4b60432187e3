package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/application"
	"github.com/alexchen/identity-vault/pkg/ai"
	"github.com/alexchen/identity-vault/pkg/response"
	"github.com/alexchen/identity-vault/pkg/validation"
)

// AIHandler serves the LinkedIn suggestion and resume generation
// endpoints.
type AIHandler struct {
	LinkedIn *application.LinkedInService
	Resume   *application.ResumeService
	Logger   *logrus.Logger
}

func NewAIHandler(linkedin *application.LinkedInService, resume *application.ResumeService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{LinkedIn: linkedin, Resume: resume, Logger: logger}
}

func (h *AIHandler) LinkedInSuggestions(c *gin.Context) {
	var updateID *uuid.UUID
	if raw := c.Query("progressUpdateId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid progressUpdateId", nil)
			return
		}
		updateID = &id
	}
	out, err := h.LinkedIn.Suggestions(c.Request.Context(), updateID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "linkedin suggestions generated", out)
}

type generateResumeRequest struct {
	Company      string `json:"company"`
	Position     string `json:"position" binding:"required"`
	Requirements string `json:"requirements"`
}

func (h *AIHandler) GenerateResume(c *gin.Context) {
	var req generateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	job := ai.JobDescription{
		Company:      req.Company,
		Position:     req.Position,
		Requirements: req.Requirements,
	}
	resume, err := h.Resume.Generate(c.Request.Context(), job)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "resume generated", resume)
}
