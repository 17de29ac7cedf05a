package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee and pay band endpoints. mw runs before
// every handler, typically auth followed by the context logger.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(mw...)
	{
		employees.GET("", middleware.RateLimitByActor(5, 20), handler.GetAll)
		employees.GET("/stats", middleware.RateLimitByActor(5, 20), handler.GetStats)
		employees.GET("/:id", middleware.RateLimitByActor(5, 20), handler.GetByID)
		employees.GET("/:id/pay-band", middleware.RateLimitByActor(5, 20), handler.GetPayBand)
		employees.POST("", middleware.RateLimitByActor(1, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByActor(1, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByActor(0.5, 2), handler.Delete)
	}

	bands := r.Group("/pay-bands")
	bands.Use(mw...)
	{
		bands.GET("", handler.ListPayBands)
		bands.PUT("/:band", middleware.RateLimitByActor(1, 5), handler.SetPayBand)
	}
}
