package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/application"
	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/pkg/response"
	"github.com/alexchen/identity-vault/pkg/validation"
)

// VaultHandler serves CRUD for all five entry collections plus the
// aggregate stats endpoint.
type VaultHandler struct {
	Svc    *application.VaultService
	Logger *logrus.Logger
}

func NewVaultHandler(svc *application.VaultService, logger *logrus.Logger) *VaultHandler {
	return &VaultHandler{Svc: svc, Logger: logger}
}

const dateLayout = "2006-01-02"

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// mustDate parses a validated datetime string; binding already rejected
// malformed values.
func mustDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func optDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := mustDate(*s)
	return &t
}

func parseUUIDs(ss []string) ([]uuid.UUID, bool) {
	out := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

func (h *VaultHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	u, err := h.Svc.EnsureUser(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return uuid.Nil, false
	}
	return u.ID, true
}

func (h *VaultHandler) Stats(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	st, err := h.Svc.Stats(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "vault stats", st)
}

// --- education ---

type createEducationRequest struct {
	Institution  string   `json:"institution" binding:"required"`
	Degree       string   `json:"degree" binding:"required"`
	FieldOfStudy string   `json:"fieldOfStudy"`
	StartDate    string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	GPA          *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

type updateEducationRequest struct {
	Institution  *string  `json:"institution" binding:"omitempty,min=1"`
	Degree       *string  `json:"degree" binding:"omitempty,min=1"`
	FieldOfStudy *string  `json:"fieldOfStudy"`
	StartDate    *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	GPA          *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	Description  *string  `json:"description"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

func (h *VaultHandler) ListEducation(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListEducation(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "education entries retrieved", out)
}

func (h *VaultHandler) CreateEducation(c *gin.Context) {
	var req createEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	e := &entity.EducationEntry{
		UserID:       userID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    mustDate(req.StartDate),
		EndDate:      optDate(req.EndDate),
		GPA:          req.GPA,
		Description:  req.Description,
		Achievements: req.Achievements,
		Tags:         req.Tags,
	}
	out, err := h.Svc.CreateEducation(c.Request.Context(), e)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "education entry created", out)
}

func (h *VaultHandler) UpdateEducation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.EducationInput{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    optDate(req.StartDate),
		EndDate:      optDate(req.EndDate),
		GPA:          req.GPA,
		Description:  req.Description,
		Achievements: req.Achievements,
		Tags:         req.Tags,
	}
	out, err := h.Svc.UpdateEducation(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "education entry updated", out)
}

func (h *VaultHandler) DeleteEducation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteEducation(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "education entry deleted", nil)
}

// --- experience ---

type createExperienceRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType" binding:"required,oneof=full-time part-time contract internship freelance project"`
	StartDate      string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Bullets        []string `json:"bullets"`
	Skills         []string `json:"skills" binding:"omitempty,dive,uuid"`
	Description    string   `json:"description"`
	Achievements   []string `json:"achievements"`
	Tags           []string `json:"tags"`
}

type updateExperienceRequest struct {
	Title          *string  `json:"title" binding:"omitempty,min=1"`
	Company        *string  `json:"company"`
	Location       *string  `json:"location"`
	EmploymentType *string  `json:"employmentType" binding:"omitempty,oneof=full-time part-time contract internship freelance project"`
	StartDate      *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Bullets        []string `json:"bullets"`
	Skills         []string `json:"skills" binding:"omitempty,dive,uuid"`
	Description    *string  `json:"description"`
	Achievements   []string `json:"achievements"`
	Tags           []string `json:"tags"`
}

func (h *VaultHandler) ListExperience(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListExperience(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "experience entries retrieved", out)
}

func (h *VaultHandler) CreateExperience(c *gin.Context) {
	var req createExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	skills, _ := parseUUIDs(req.Skills)
	e := &entity.ExperienceEntry{
		UserID:         userID,
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      mustDate(req.StartDate),
		EndDate:        optDate(req.EndDate),
		Bullets:        req.Bullets,
		Skills:         skills,
		Description:    req.Description,
		Achievements:   req.Achievements,
		Tags:           req.Tags,
	}
	out, err := h.Svc.CreateExperience(c.Request.Context(), e)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "experience entry created", out)
}

func (h *VaultHandler) UpdateExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.ExperienceInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      optDate(req.StartDate),
		EndDate:        optDate(req.EndDate),
		Bullets:        req.Bullets,
		Description:    req.Description,
		Achievements:   req.Achievements,
		Tags:           req.Tags,
	}
	if req.Skills != nil {
		skills, _ := parseUUIDs(req.Skills)
		in.Skills = skills
	}
	out, err := h.Svc.UpdateExperience(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "experience entry updated", out)
}

func (h *VaultHandler) DeleteExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteExperience(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "experience entry deleted", nil)
}

// --- projects ---

type createProjectRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
	Skills       []string `json:"skills" binding:"omitempty,dive,uuid"`
	URL          string   `json:"url" binding:"omitempty,url"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

type updateProjectRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1"`
	Description  *string  `json:"description"`
	StartDate    *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
	Skills       []string `json:"skills" binding:"omitempty,dive,uuid"`
	URL          *string  `json:"url" binding:"omitempty,url"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

func (h *VaultHandler) ListProjects(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListProjects(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "project entries retrieved", out)
}

func (h *VaultHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	skills, _ := parseUUIDs(req.Skills)
	p := &entity.ProjectEntry{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    mustDate(req.StartDate),
		EndDate:      optDate(req.EndDate),
		Bullets:      req.Bullets,
		Technologies: req.Technologies,
		Skills:       skills,
		URL:          req.URL,
		Achievements: req.Achievements,
		Tags:         req.Tags,
	}
	out, err := h.Svc.CreateProject(c.Request.Context(), p)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "project entry created", out)
}

func (h *VaultHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.ProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    optDate(req.StartDate),
		EndDate:      optDate(req.EndDate),
		Bullets:      req.Bullets,
		Technologies: req.Technologies,
		URL:          req.URL,
		Achievements: req.Achievements,
		Tags:         req.Tags,
	}
	if req.Skills != nil {
		skills, _ := parseUUIDs(req.Skills)
		in.Skills = skills
	}
	out, err := h.Svc.UpdateProject(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "project entry updated", out)
}

func (h *VaultHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteProject(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "project entry deleted", nil)
}

// --- skills ---

type createSkillRequest struct {
	Name              string   `json:"name" binding:"required"`
	Category          string   `json:"category" binding:"required,oneof=programming framework tool language soft-skill other"`
	Proficiency       string   `json:"proficiency" binding:"required,oneof=beginner intermediate advanced expert"`
	YearsOfExperience *float64 `json:"yearsOfExperience" binding:"omitempty,gte=0"`
	VerifiedBy        []string `json:"verifiedBy" binding:"omitempty,dive,uuid"`
	Tags              []string `json:"tags"`
}

type updateSkillRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1"`
	Category          *string  `json:"category" binding:"omitempty,oneof=programming framework tool language soft-skill other"`
	Proficiency       *string  `json:"proficiency" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	YearsOfExperience *float64 `json:"yearsOfExperience" binding:"omitempty,gte=0"`
	VerifiedBy        []string `json:"verifiedBy" binding:"omitempty,dive,uuid"`
	Tags              []string `json:"tags"`
}

func (h *VaultHandler) ListSkills(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListSkills(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "skill entries retrieved", out)
}

func (h *VaultHandler) CreateSkill(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	verifiedBy, _ := parseUUIDs(req.VerifiedBy)
	sk := &entity.SkillEntry{
		UserID:            userID,
		Name:              req.Name,
		Category:          req.Category,
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		VerifiedBy:        verifiedBy,
		Tags:              req.Tags,
	}
	out, err := h.Svc.CreateSkill(c.Request.Context(), sk)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "skill entry created", out)
}

func (h *VaultHandler) UpdateSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.SkillInput{
		Name:              req.Name,
		Category:          req.Category,
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		Tags:              req.Tags,
	}
	if req.VerifiedBy != nil {
		verifiedBy, _ := parseUUIDs(req.VerifiedBy)
		in.VerifiedBy = verifiedBy
	}
	out, err := h.Svc.UpdateSkill(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "skill entry updated", out)
}

func (h *VaultHandler) DeleteSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteSkill(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "skill entry deleted", nil)
}

// --- awards ---

type createAwardRequest struct {
	Title       string   `json:"title" binding:"required"`
	Issuer      string   `json:"issuer"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"omitempty,oneof=academic professional competition recognition other"`
	Tags        []string `json:"tags"`
}

type updateAwardRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Issuer      *string  `json:"issuer"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=academic professional competition recognition other"`
	Tags        []string `json:"tags"`
}

func (h *VaultHandler) ListAwards(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListAwards(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "award entries retrieved", out)
}

func (h *VaultHandler) CreateAward(c *gin.Context) {
	var req createAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	a := &entity.AwardEntry{
		UserID:      userID,
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        mustDate(req.Date),
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	}
	out, err := h.Svc.CreateAward(c.Request.Context(), a)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "award entry created", out)
}

func (h *VaultHandler) UpdateAward(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.AwardInput{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        optDate(req.Date),
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	}
	out, err := h.Svc.UpdateAward(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "award entry updated", out)
}

func (h *VaultHandler) DeleteAward(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteAward(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "award entry deleted", nil)
}
