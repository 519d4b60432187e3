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

// InterviewHandler serves the mock interview session endpoints.
type InterviewHandler struct {
	Svc    *application.InterviewService
	Logger *logrus.Logger
}

func NewInterviewHandler(svc *application.InterviewService, logger *logrus.Logger) *InterviewHandler {
	return &InterviewHandler{Svc: svc, Logger: logger}
}

type startInterviewRequest struct {
	Company      string `json:"company"`
	Position     string `json:"position" binding:"required"`
	Requirements string `json:"requirements"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	var req startInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	job := ai.JobDescription{
		Company:      req.Company,
		Position:     req.Position,
		Requirements: req.Requirements,
	}
	res, err := h.Svc.Start(c.Request.Context(), job)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "interview started", res)
}

type interviewMessageRequest struct {
	SessionID    string `json:"sessionId" binding:"required,uuid"`
	UserResponse string `json:"userResponse" binding:"required,min=1"`
}

func (h *InterviewHandler) Message(c *gin.Context) {
	var req interviewMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sessionID := uuid.MustParse(req.SessionID)
	q, err := h.Svc.Message(c.Request.Context(), sessionID, req.UserResponse)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "next question", q)
}

type endInterviewRequest struct {
	SessionID string `json:"sessionId" binding:"required,uuid"`
}

func (h *InterviewHandler) End(c *gin.Context) {
	var req endInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sessionID := uuid.MustParse(req.SessionID)
	res, err := h.Svc.End(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "interview ended", res)
}
