package payroll_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func setupPayrollRouter(t *testing.T, actor string, rdb *redis.Client) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	handler := payroll.NewHandler(svc)
	if rdb != nil {
		handler = payroll.NewHandlerWithRedis(svc, rdb)
	}

	setActor := func(c *gin.Context) {
		if actor != "" {
			c.Set(middleware.ActorKey, actor)
		}
		c.Next()
	}

	r := gin.New()
	payroll.RegisterRoutes(r.Group("/api/v1"), handler, rate.Inf, 1, setActor)
	return r, svc
}

func doPayrollRequest(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayrollHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		band := 1
		svc.EXPECT().ListForPeriod(gomock.Any(), 2024, 6).Return([]payroll.Row{{
			EmployeeID:     1,
			Name:           "Ayu",
			EmploymentType: employee.CategorySalaried,
			PayBand:        &band,
			Total:          dec("1995000"),
			Breakdown:      payroll.Breakdown{Base: dec("1730000"), Variable: dec("265000"), Days: 20},
			Status:         payroll.StatusPending,
		}}, nil)

		w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls?year=2024&month=6", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"total_amount":"1995000.00"`)
		assert.Contains(t, body, `"variable_amount":"265000.00"`)
		assert.Contains(t, body, `"days":20`)
		assert.Contains(t, body, `"status":"PENDING"`)
	})

	t.Run("invalid month", func(t *testing.T) {
		r, _ := setupPayrollRouter(t, "finance-1", nil)

		w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls?year=2024&month=13", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("internal error hides detail", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		svc.EXPECT().ListForPeriod(gomock.Any(), 2024, 6).Return(nil, errors.New("connection refused"))

		w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls?year=2024&month=6", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestPayrollHandler_Pay(t *testing.T) {
	const body = `{"employee_ids":[1,2],"year":2024,"month":6,"payment_method":"TRANSFER","reference":"B-1"}`

	t.Run("actor from token", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		svc.EXPECT().Pay(gomock.Any(), payroll.PayCommand{
			EmployeeIDs:   []int64{1, 2},
			Year:          2024,
			Month:         6,
			Actor:         "finance-1",
			PaymentMethod: "TRANSFER",
			Reference:     "B-1",
		}).Return(payroll.PayResult{Requested: 2, Paid: 1, Skipped: 1}, nil)

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"paid":1`)
		assert.Contains(t, w.Body.String(), `"skipped":1`)
	})

	t.Run("actor from body when unauthenticated", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "", nil)
		svc.EXPECT().Pay(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd payroll.PayCommand) (payroll.PayResult, error) {
				assert.Equal(t, "cashier", cmd.Actor)
				return payroll.PayResult{Requested: 1, Paid: 1}, nil
			})

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay",
			`{"employee_ids":[1],"year":2024,"month":6,"payment_method":"CASH","paid_by":"cashier"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing actor", func(t *testing.T) {
		r, _ := setupPayrollRouter(t, "", nil)

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), payrollerrors.ErrActorRequired.Message)
	})

	t.Run("empty employee list", func(t *testing.T) {
		r, _ := setupPayrollRouter(t, "finance-1", nil)

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay",
			`{"employee_ids":[],"year":2024,"month":6,"payment_method":"CASH"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("already paid batch is not an error", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		svc.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(payroll.PayResult{Requested: 2, Skipped: 2}, nil)

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), `"paid":0`)
		assert.Contains(t, w.Body.String(), `"skipped":2`)
	})

	t.Run("stores idempotent response", func(t *testing.T) {
		rdb, rmock := redismock.NewClientMock()
		r, svc := setupPayrollRouter(t, "finance-1", rdb)

		cacheKey := "idemp:/api/v1/payrolls/pay:finance-1:k-1"
		rmock.ExpectGet(cacheKey).RedisNil()
		rmock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		rmock.ExpectSet(cacheKey, []byte(`{"requested":2,"paid":2,"skipped":0}`), 24*time.Hour).SetVal("OK")
		rmock.ExpectDel(cacheKey + ":lock").SetVal(1)

		svc.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(payroll.PayResult{Requested: 2, Paid: 2}, nil)

		w := doPayrollRequest(r, http.MethodPost, "/api/v1/payrolls/pay", body, middleware.IdempotencyHeader, "k-1")

		assert.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, rmock.ExpectationsWereMet())
	})
}

func TestPayrollHandler_Status(t *testing.T) {
	r, svc := setupPayrollRouter(t, "finance-1", nil)
	svc.EXPECT().Status(gomock.Any(), int64(3), 2024, 6).Return(payroll.StatusPending, nil)

	w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls/status?employee_id=3&year=2024&month=6", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
}

func TestPayrollHandler_TotalPaidAndSummary(t *testing.T) {
	r, svc := setupPayrollRouter(t, "finance-1", nil)
	svc.EXPECT().TotalPaid(gomock.Any(), 2024, 6).Return(dec("1800000"), nil)
	svc.EXPECT().Summary(gomock.Any(), 2024, 6).Return(payroll.PeriodSummary{
		PaidTotal:    dec("1800000"),
		PendingTotal: dec("1730000"),
		GrandTotal:   dec("3530000"),
		PaidCount:    1,
		PendingCount: 1,
	}, nil)

	w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls/total-paid?year=2024&month=6", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_paid":"1800000.00"`)

	w = doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls/summary?year=2024&month=6", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grand_total":"3530000.00"`)
	assert.Contains(t, w.Body.String(), `"pending_count":1`)
}

func TestPayrollHandler_PaymentInfo(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		svc.EXPECT().PaymentInfo(gomock.Any(), int64(2), 2024, 6).Return(payroll.PaymentInfo{
			SettlementID:  9,
			PaidBy:        "finance-1",
			PaidAt:        time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
			PaymentMethod: "TRANSFER",
			Amount:        dec("1800000"),
		}, nil)

		w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls/payment-info?employee_id=2&year=2024&month=6", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"paid_by":"finance-1"`)
		assert.Contains(t, w.Body.String(), `"amount":"1800000.00"`)
	})

	t.Run("not paid", func(t *testing.T) {
		r, svc := setupPayrollRouter(t, "finance-1", nil)
		svc.EXPECT().PaymentInfo(gomock.Any(), int64(2), 2024, 6).Return(payroll.PaymentInfo{}, payrollerrors.ErrPaymentNotFound)

		w := doPayrollRequest(r, http.MethodGet, "/api/v1/payrolls/payment-info?employee_id=2&year=2024&month=6", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_OvertimeSummary(t *testing.T) {
	r, svc := setupPayrollRouter(t, "finance-1", nil)
	svc.EXPECT().OvertimeSummary(gomock.Any(), 2024, 6).Return([]payroll.OvertimeSummaryRow{{
		EmployeeID:     1,
		Name:           "Ayu",
		EmploymentType: employee.CategorySalaried,
		WeekdayHours:   dec("1.33"),
		WeekendHours:   decimal.NewFromInt(4),
	}}, nil)

	w := doPayrollRequest(r, http.MethodGet, "/api/v1/overtime-entries/summary?year=2024&month=6", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weekday_hours":"1.33"`)
	assert.Contains(t, w.Body.String(), `"weekend_hours":"4.00"`)
}
