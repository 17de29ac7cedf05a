package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ActorKey)+"|"+contextutil.GetActor(c.Request.Context()))
	})

	t.Run("user_id claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "finance", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "finance|finance", w.Body.String())
	})

	t.Run("sub claim from cookie", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "ops"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops|ops", w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "finance", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "x"}).SignedString([]byte("other"))
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("no actor claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "admin"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.NotNil(t, contextutil.GetLogger(ctx, nil))
		c.String(http.StatusOK, contextutil.GetRequestID(ctx))
	})

	t.Run("propagates incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitByActor(t *testing.T) {
	r := setupRouter()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ActorKey, c.GetHeader("X-Actor"))
		c.Next()
	})
	r.POST("/pay", middleware.RateLimitByActor(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(actor string) int {
		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		req.Header.Set("X-Actor", actor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusNoContent, call("bob"))
	assert.Equal(t, http.StatusNoContent, call(""))
	assert.Equal(t, http.StatusNoContent, call(""))
}

func TestIdempotency(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *bool) {
		rdb, mock := redismock.NewClientMock()
		called := false
		r := setupRouter()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ActorKey, "finance")
			c.Next()
		})
		r.POST("/pay", middleware.Idempotency(rdb), func(c *gin.Context) {
			called = true
			if c.GetHeader(middleware.IdempotencyHeader) != "" {
				assert.Equal(t, "idemp:/pay:finance:k1", c.GetString(middleware.IdempotencyCacheKey))
				assert.Equal(t, "idemp:/pay:finance:k1:lock", c.GetString(middleware.IdempotencyLockKey))
			}
			c.Status(http.StatusCreated)
		})
		return r, mock, &called
	}

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		if key != "" {
			req.Header.Set(middleware.IdempotencyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("replays cached response", func(t *testing.T) {
		r, mock, called := newRouter(t)
		mock.ExpectGet("idemp:/pay:finance:k1").SetVal(`{"paid":2}`)

		w := post(r, "k1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"paid":2`)
		assert.False(t, *called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects concurrent duplicate", func(t *testing.T) {
		r, mock, called := newRouter(t)
		mock.ExpectGet("idemp:/pay:finance:k1").RedisNil()
		mock.ExpectSetNX("idemp:/pay:finance:k1:lock", "locked", 30*time.Second).SetVal(false)

		w := post(r, "k1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, *called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request acquires lock", func(t *testing.T) {
		r, mock, called := newRouter(t)
		mock.ExpectGet("idemp:/pay:finance:k1").RedisNil()
		mock.ExpectSetNX("idemp:/pay:finance:k1:lock", "locked", 30*time.Second).SetVal(true)

		w := post(r, "k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, *called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key skips redis", func(t *testing.T) {
		r, mock, called := newRouter(t)

		w := post(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, *called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
