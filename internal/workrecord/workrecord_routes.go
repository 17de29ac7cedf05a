package workrecord

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, mw ...gin.HandlerFunc) {
	records := r.Group("/work-records")
	records.Use(mw...)
	{
		records.GET("", h.Get)
		records.PUT("", middleware.RateLimitByActor(2, 10), h.SetDaysWorked)
	}
}
