package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen/identity-vault/internal/container"
	handlers "github.com/alexchen/identity-vault/internal/interface/http"
	"github.com/alexchen/identity-vault/internal/interface/middleware"
)

// VaultModule wires the profile endpoint, the five entry collections and
// the stats endpoint under /api.
type VaultModule struct {
	Profile *handlers.ProfileHandler
	Vault   *handlers.VaultHandler
}

func NewVaultModule(profile *handlers.ProfileHandler, vault *handlers.VaultHandler) *VaultModule {
	return &VaultModule{Profile: profile, Vault: vault}
}

func (m *VaultModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	user := rg.Group("/user", rl)
	{
		user.GET("/profile", m.Profile.Get)
		user.PUT("/profile", m.Profile.Update)
	}

	rg.GET("/vault/stats", rl, m.Vault.Stats)

	entries := rg.Group("", rl)
	{
		entries.GET("/education", m.Vault.ListEducation)
		entries.POST("/education", m.Vault.CreateEducation)
		entries.PUT("/education/:id", m.Vault.UpdateEducation)
		entries.DELETE("/education/:id", m.Vault.DeleteEducation)

		entries.GET("/experience", m.Vault.ListExperience)
		entries.POST("/experience", m.Vault.CreateExperience)
		entries.PUT("/experience/:id", m.Vault.UpdateExperience)
		entries.DELETE("/experience/:id", m.Vault.DeleteExperience)

		entries.GET("/projects", m.Vault.ListProjects)
		entries.POST("/projects", m.Vault.CreateProject)
		entries.PUT("/projects/:id", m.Vault.UpdateProject)
		entries.DELETE("/projects/:id", m.Vault.DeleteProject)

		entries.GET("/skills", m.Vault.ListSkills)
		entries.POST("/skills", m.Vault.CreateSkill)
		entries.PUT("/skills/:id", m.Vault.UpdateSkill)
		entries.DELETE("/skills/:id", m.Vault.DeleteSkill)

		entries.GET("/awards", m.Vault.ListAwards)
		entries.POST("/awards", m.Vault.CreateAward)
		entries.PUT("/awards/:id", m.Vault.UpdateAward)
		entries.DELETE("/awards/:id", m.Vault.DeleteAward)
	}
}
