package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/application"
	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/pkg/response"
	"github.com/alexchen/identity-vault/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.VaultService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.VaultService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type linkRequest struct {
	Platform string `json:"platform" binding:"required,oneof=linkedin github twitter personal other"`
	URL      string `json:"url" binding:"required,url"`
}

type updateProfileRequest struct {
	FullName *string       `json:"fullName" binding:"omitempty,min=1"`
	Email    *string       `json:"email" binding:"omitempty,email"`
	Phone    *string       `json:"phone"`
	Location *string       `json:"location"`
	Summary  *string       `json:"summary"`
	Links    []linkRequest `json:"links" binding:"omitempty,dive"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "profile retrieved", u)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.ProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Summary:  req.Summary,
	}
	if req.Links != nil {
		links := make([]entity.Link, 0, len(req.Links))
		for _, l := range req.Links {
			links = append(links, entity.Link{Platform: l.Platform, URL: l.URL})
		}
		in.Links = links
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "profile updated", u)
}
