package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen/identity-vault/internal/container"
	handlers "github.com/alexchen/identity-vault/internal/interface/http"
	"github.com/alexchen/identity-vault/internal/interface/middleware"
)

// ProgressModule wires the ingestion endpoint and the update history.
// Ingestion gets a tight limit since every call hits the model.
type ProgressModule struct {
	Handler *handlers.ProgressHandler
}

func NewProgressModule(h *handlers.ProgressHandler) *ProgressModule {
	return &ProgressModule{Handler: h}
}

func (m *ProgressModule) Register(rg *gin.RouterGroup) {
	ingestLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	progress := rg.Group("/progress")
	{
		progress.POST("/update", ingestLimiter, m.Handler.Create)
		progress.GET("/updates", readLimiter, m.Handler.List)
		progress.GET("/updates/search", readLimiter, m.Handler.SearchUpdates)
	}
}
