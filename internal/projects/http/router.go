package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projectstage/config-backend/internal/api/http/middleware"
)

// Register attaches the project config routes to the given router group.
// Each route sits behind its own admission gate of requests per window.
func (h *Handler) Register(rg *gin.RouterGroup, requests int, window time.Duration) {
	rg.POST("/upload", middleware.RateLimit(requests, window), h.upload)
	rg.GET("/status/:id", middleware.RateLimit(requests, window), h.status)
	rg.PATCH("/update-status", middleware.RateLimit(requests, window), h.updateStatus)
}
