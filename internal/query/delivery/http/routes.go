package http

import (
	"hardware-ai-orchestrator/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Analyze
// and Feedback sit behind the rate limiter; the read-only endpoints do
// not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
	rg.POST("/feedback", mw.RateLimit(), h.Feedback)
	rg.GET("/metrics/accuracy", h.Accuracy)
	rg.GET("/status", h.Status)
}
