package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int
	}{
		{name: "exact", total: 100, limit: 50, wantPages: 2},
		{name: "rounds up", total: 101, limit: 50, wantPages: 3},
		{name: "empty", total: 0, limit: 50, wantPages: 0},
		{name: "no limit", total: 10, limit: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := response.NewPaginationMeta(tt.total, 1, tt.limit)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success omits error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Success(c, http.StatusOK, map[string]int{"paid": 2}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"paid":2}}`, w.Body.String())
	})

	t.Run("error carries code and details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, http.StatusConflict, "INVALID_STATE", "already paid", map[string]int{"skipped": 1})

		require.Equal(t, http.StatusConflict, w.Code)
		var env response.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Equal(t, "already paid", env.Error.Message)
		assert.Nil(t, env.Data)
	})
}
