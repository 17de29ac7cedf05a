package setting

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw ...gin.HandlerFunc) {
	settings := r.Group("/settings")
	settings.Use(mw...)
	{
		settings.GET("/daily-rate", handler.GetDailyRate)
		settings.PUT("/daily-rate", middleware.RateLimitByActor(0.5, 2), handler.UpdateDailyRate)
	}
}
