package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen/identity-vault/internal/container"
	handlers "github.com/alexchen/identity-vault/internal/interface/http"
	"github.com/alexchen/identity-vault/internal/interface/middleware"
)

// InterviewModule wires the mock interview session endpoints.
type InterviewModule struct {
	Handler *handlers.InterviewHandler
}

func NewInterviewModule(h *handlers.InterviewHandler) *InterviewModule {
	return &InterviewModule{Handler: h}
}

func (m *InterviewModule) Register(rg *gin.RouterGroup) {
	startLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	chatLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	iv := rg.Group("/interview")
	{
		iv.POST("/start", startLimiter, m.Handler.Start)
		iv.POST("/message", chatLimiter, m.Handler.Message)
		iv.POST("/end", chatLimiter, m.Handler.End)
	}
}
