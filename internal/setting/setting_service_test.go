package setting_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/setting"
	settingerrors "go-payroll/internal/setting/errors"
	"go-payroll/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultRate = decimal.NewFromInt(100000)

func setupService(t *testing.T) (setting.Service, setting.Repository) {
	db := testdb.Open(t, &setting.AppSetting{})
	repo := setting.NewRepository(db)
	return setting.NewService(repo, defaultRate, zap.NewNop()), repo
}

func TestService_DailyRate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing falls back to default", func(t *testing.T) {
		svc, _ := setupService(t)

		rate, err := svc.DailyRate(ctx)

		require.NoError(t, err)
		assert.True(t, rate.Equal(defaultRate))
	})

	t.Run("unparseable falls back to default", func(t *testing.T) {
		svc, repo := setupService(t)
		require.NoError(t, repo.Upsert(ctx, setting.KeyDailyRate, "seratus ribu"))

		rate, err := svc.DailyRate(ctx)

		require.NoError(t, err)
		assert.True(t, rate.Equal(defaultRate))

		resp, err := svc.GetDailyRate(ctx)
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
	})

	t.Run("stored value wins", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.UpdateDailyRate(ctx, setting.UpdateDailyRateRequest{DailyRate: "120000"})
		require.NoError(t, err)
		_, err = svc.UpdateDailyRate(ctx, setting.UpdateDailyRateRequest{DailyRate: "125000.5"})
		require.NoError(t, err)

		rate, err := svc.DailyRate(ctx)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("125000.5")))

		resp, err := svc.GetDailyRate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "125000.50", resp.DailyRate)
		assert.False(t, resp.IsDefault)
	})

	t.Run("negative rejected", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.UpdateDailyRate(ctx, setting.UpdateDailyRateRequest{DailyRate: "-5"})

		assert.ErrorIs(t, err, settingerrors.ErrInvalidDailyRate)
	})
}

func TestHandler_DailyRate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := setupService(t)
	r := gin.New()
	setting.RegisterRoutes(r.Group("/api/v1"), setting.NewHandler(svc))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/daily-rate", strings.NewReader(`{"daily_rate":"110000"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings/daily-rate", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"daily_rate":"110000.00"`)

	req = httptest.NewRequest(http.MethodPut, "/api/v1/settings/daily-rate", strings.NewReader(`{"daily_rate":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
