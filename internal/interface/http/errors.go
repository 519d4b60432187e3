package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/application"
	repo "github.com/alexchen/identity-vault/internal/domain/repository"
	"github.com/alexchen/identity-vault/internal/interview"
	"github.com/alexchen/identity-vault/pkg/ai"
	"github.com/alexchen/identity-vault/pkg/response"
)

// writeServiceError maps service errors onto the API envelope. Anything
// unrecognized is a plain 500 with the detail kept out of the body.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrConflict):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, interview.ErrNotFound):
		response.Error(c, http.StatusNotFound, "interview session not found", nil)
	case errors.Is(err, ai.ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, "AI model is not configured", nil)
	case errors.Is(err, ai.ErrUpstream), errors.Is(err, ai.ErrParse):
		if logger != nil {
			logger.WithError(err).Error("ai call failed")
		}
		response.Error(c, http.StatusInternalServerError, "AI request failed", nil)
	default:
		if logger != nil {
			logger.WithError(err).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
