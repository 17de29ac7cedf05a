package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"go-payroll/internal/middleware"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotentResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, logger: zap.L().Named("payroll.handler")}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb, logger: zap.L().Named("payroll.handler")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("payroll request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, err.Error())
}

func (h *Handler) List(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	rows, err := h.service.ListForPeriod(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToRowResponses(rows), nil)
}

// Pay settles the selected employees. The paying actor comes from the token;
// paid_by in the body is only read for unauthenticated callers.
func (h *Handler) Pay(c *gin.Context) {
	lockKey, _ := c.Get(middleware.IdempotencyLockKey)
	cacheKey, _ := c.Get(middleware.IdempotencyCacheKey)

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	actor := c.GetString(middleware.ActorKey)
	if actor == "" {
		actor = req.PaidBy
	}
	if actor == "" {
		h.writeServiceError(c, payrollerrors.ErrActorRequired)
		return
	}

	result, err := h.service.Pay(c.Request.Context(), PayCommand{
		EmployeeIDs:   req.EmployeeIDs,
		Year:          req.Year,
		Month:         req.Month,
		Actor:         actor,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := PayResponse{Requested: result.Requested, Paid: result.Paid, Skipped: result.Skipped}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotentResponseTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Status(c *gin.Context) {
	var q EmployeePeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	status, err := h.service.Status(c.Request.Context(), q.EmployeeID, q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{
		EmployeeID: q.EmployeeID,
		Year:       q.Year,
		Month:      q.Month,
		Status:     string(status),
	}, nil)
}

func (h *Handler) TotalPaid(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	total, err := h.service.TotalPaid(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TotalPaidResponse{
		Year:      q.Year,
		Month:     q.Month,
		TotalPaid: total.StringFixed(2),
	}, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	sum, err := h.service.Summary(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, SummaryResponse{
		Year:         q.Year,
		Month:        q.Month,
		PaidTotal:    sum.PaidTotal.StringFixed(2),
		PendingTotal: sum.PendingTotal.StringFixed(2),
		GrandTotal:   sum.GrandTotal.StringFixed(2),
		PaidCount:    sum.PaidCount,
		PendingCount: sum.PendingCount,
	}, nil)
}

func (h *Handler) PaymentInfo(c *gin.Context) {
	var q EmployeePeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	info, err := h.service.PaymentInfo(c.Request.Context(), q.EmployeeID, q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PaymentInfoResponse{
		SettlementID:  info.SettlementID,
		PaidBy:        info.PaidBy,
		PaidAt:        info.PaidAt,
		PaymentMethod: info.PaymentMethod,
		Reference:     info.Reference,
		Amount:        info.Amount.StringFixed(2),
	}, nil)
}

func (h *Handler) OvertimeSummary(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	rows, err := h.service.OvertimeSummary(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := make([]OvertimeSummaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = OvertimeSummaryResponse{
			EmployeeID:     row.EmployeeID,
			Name:           row.Name,
			EmploymentType: string(row.EmploymentType),
			WeekdayHours:   row.WeekdayHours.StringFixed(2),
			WeekendHours:   row.WeekendHours.StringFixed(2),
			DaysWorked:     row.DaysWorked,
		}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func mapToRowResponses(rows []Row) []PayrollRowResponse {
	resp := make([]PayrollRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = PayrollRowResponse{
			EmployeeID:     row.EmployeeID,
			Name:           row.Name,
			EmploymentType: string(row.EmploymentType),
			PayBand:        row.PayBand,
			BaseAmount:     row.Breakdown.Base.StringFixed(2),
			VariableAmount: row.Breakdown.Variable.StringFixed(2),
			TotalAmount:    row.Total.StringFixed(2),
			Days:           row.Breakdown.Days,
			Status:         string(row.Status),
			Frozen:         row.Frozen,
		}
	}
	return resp
}
