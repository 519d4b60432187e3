package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/application"
	"github.com/alexchen/identity-vault/pkg/response"
	"github.com/alexchen/identity-vault/pkg/validation"
)

// ProgressHandler serves the ingestion endpoint and the update history.
type ProgressHandler struct {
	Ingest *application.IngestService
	Search *application.SearchService
	Logger *logrus.Logger
}

func NewProgressHandler(ingest *application.IngestService, search *application.SearchService, logger *logrus.Logger) *ProgressHandler {
	return &ProgressHandler{Ingest: ingest, Search: search, Logger: logger}
}

type progressUpdateRequest struct {
	RawText string `json:"rawText" binding:"required,min=1"`
}

func (h *ProgressHandler) Create(c *gin.Context) {
	var req progressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Ingest.Ingest(c.Request.Context(), req.RawText)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "progress update processed", res)
}

func (h *ProgressHandler) List(c *gin.Context) {
	updates, err := h.Ingest.ListUpdates(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "progress updates retrieved", updates)
}

func (h *ProgressHandler) SearchUpdates(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	user, err := h.Ingest.Vault.EnsureUser(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	hits, err := h.Search.Search(c.Request.Context(), user.ID, q, size)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "search results", hits)
}
