package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts the ledger endpoints. The pay endpoint is rate limited
// per actor and guarded by the idempotency middleware when the handler has Redis.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, payLimit rate.Limit, payBurst int, mw ...gin.HandlerFunc) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(mw...)
	{
		payrolls.GET("", handler.List)
		payrolls.GET("/status", handler.Status)
		payrolls.GET("/total-paid", handler.TotalPaid)
		payrolls.GET("/summary", handler.Summary)
		payrolls.GET("/payment-info", handler.PaymentInfo)
		payrolls.POST(
			"/pay",
			middleware.RateLimitByActor(payLimit, payBurst),
			middleware.Idempotency(handler.rdb),
			handler.Pay,
		)
	}

	overtime := r.Group("/overtime-entries")
	overtime.Use(mw...)
	overtime.GET("/summary", handler.OvertimeSummary)
}
