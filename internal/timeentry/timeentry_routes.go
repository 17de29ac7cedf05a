package timeentry

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, mw ...gin.HandlerFunc) {
	entries := r.Group("/overtime-entries")
	entries.Use(mw...)
	{
		entries.GET("", h.List)
		entries.POST("", middleware.RateLimitByActor(2, 10), h.Create)
		entries.DELETE("/:id", middleware.RateLimitByActor(2, 10), h.Delete)
	}
}
