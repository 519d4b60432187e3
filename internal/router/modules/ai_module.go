package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen/identity-vault/internal/container"
	handlers "github.com/alexchen/identity-vault/internal/interface/http"
	"github.com/alexchen/identity-vault/internal/interface/middleware"
)

// AIModule wires the LinkedIn suggestion and resume endpoints. Both hit
// the model, so limits stay low.
type AIModule struct {
	Handler *handlers.AIHandler
}

func NewAIModule(h *handlers.AIHandler) *AIModule {
	return &AIModule{Handler: h}
}

func (m *AIModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/linkedin/suggestions", rl, m.Handler.LinkedInSuggestions)
	rg.POST("/resume/generate", rl, m.Handler.GenerateResume)
}
