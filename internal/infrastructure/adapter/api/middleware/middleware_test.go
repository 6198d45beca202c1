package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/time"
	mcore "github.com/amirhossein-jamali/locker-rental/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

// whoami echoes the identity stored by the auth middleware
func whoami(c *gin.Context) {
	userID, _ := UserIDFrom(c)
	c.String(http.StatusOK, strconv.FormatUint(userID, 10))
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "locker-rental", 60, timeadapter.NewRealTimeProvider())
	r := gin.New()
	r.GET("/me", Auth(tokens), whoami)
	r.PUT("/admin", Auth(tokens), RequireRole(auth.RoleAdmin), whoami)

	t.Run("should accept a valid bearer token", func(t *testing.T) {
		token, _, err := tokens.GenerateToken(42, "")
		require.NoError(t, err)

		rec := do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "42", rec.Body.String())
	})

	t.Run("should reject a missing header", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/me", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeUnauthorized, errorCode(t, rec))
	})

	t.Run("should reject a non bearer scheme", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Basic Zm9vOmJhcg=="})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a forged token", func(t *testing.T) {
		forged, _, err := auth.NewTokenManager("other", "locker-rental", 60, timeadapter.NewRealTimeProvider()).GenerateToken(42, "")
		require.NoError(t, err)

		rec := do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + forged})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should require the admin role", func(t *testing.T) {
		user, _, err := tokens.GenerateToken(1, "")
		require.NoError(t, err)
		admin, _, err := tokens.GenerateToken(2, auth.RoleAdmin)
		require.NoError(t, err)

		rec := do(r, http.MethodPut, "/admin", map[string]string{"Authorization": "Bearer " + user})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, errs.CodeForbidden, errorCode(t, rec))

		rec = do(r, http.MethodPut, "/admin", map[string]string{"Authorization": "Bearer " + admin})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHeaderIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/me", HeaderIdentity(), whoami)

	t.Run("should trust the user header", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/me", map[string]string{UserIDHeader: "7"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", rec.Body.String())
	})

	t.Run("should reject a zero or missing user", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", map[string]string{UserIDHeader: "0"}).Code)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("should reject requests over the burst per client", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimiter(rate.Every(time.Hour), 2))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		first := map[string]string{"X-Forwarded-For": "10.0.0.1"}
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/", first).Code)
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/", first).Code)

		rec := do(r, http.MethodGet, "/", first)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, errs.CodeTooManyRequests, errorCode(t, rec))
	})

	t.Run("should evict buckets of idle clients", func(t *testing.T) {
		limiter := NewIPRateLimiterWithIdle(rate.Every(time.Hour), 1, 20*time.Millisecond)

		first := limiter.GetLimiter("10.0.0.1")
		assert.True(t, first.Allow())
		assert.False(t, first.Allow())
		assert.Same(t, first, limiter.GetLimiter("10.0.0.1"))
		limiter.GetLimiter("10.0.0.2")
		assert.Equal(t, 2, limiter.Len())

		assert.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, 10*time.Millisecond)
		assert.True(t, limiter.GetLimiter("10.0.0.1").Allow())
	})

	t.Run("should keep a bucket at least until it refills", func(t *testing.T) {
		assert.Equal(t, minLimiterIdle, limiterIdle(10, 20))
		assert.Equal(t, 2*time.Hour, limiterIdle(0.5, 3600))
	})

	t.Run("should be a no-op when disabled", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimiter(0, 0))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/", nil).Code)
		}
	})
}

func TestCache(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	calls := 0
	status := http.StatusOK

	r := gin.New()
	r.GET("/lockers", Cache(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"calls": calls})
	})
	r.PUT("/lockers/1", InvalidateCache(store), func(c *gin.Context) { c.Status(status) })

	t.Run("should serve repeated GETs from the cache", func(t *testing.T) {
		first := do(r, http.MethodGet, "/lockers", nil)
		second := do(r, http.MethodGet, "/lockers", nil)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
		assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))
	})

	t.Run("should flush after a successful write", func(t *testing.T) {
		do(r, http.MethodPut, "/lockers/1", nil)
		do(r, http.MethodGet, "/lockers", nil)

		assert.Equal(t, 2, calls)
	})

	t.Run("should keep the cache after a failed write", func(t *testing.T) {
		status = http.StatusConflict
		do(r, http.MethodPut, "/lockers/1", nil)
		status = http.StatusOK
		do(r, http.MethodGet, "/lockers", nil)

		assert.Equal(t, 2, calls)
	})

	t.Run("should not cache failures", func(t *testing.T) {
		store.Flush()
		status = http.StatusServiceUnavailable
		do(r, http.MethodGet, "/lockers", nil)
		do(r, http.MethodGet, "/lockers", nil)
		status = http.StatusOK

		assert.Equal(t, 4, calls)
	})
}

func TestCacheKeepsRequestID(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	calls := 0

	r := gin.New()
	r.Use(RequestID())
	r.GET("/lockers", Cache(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	t.Run("should echo each caller's own request ID on a cache hit", func(t *testing.T) {
		first := do(r, http.MethodGet, "/lockers", map[string]string{RequestIDHeader: "req-a"})
		second := do(r, http.MethodGet, "/lockers", map[string]string{RequestIDHeader: "req-b"})

		assert.Equal(t, 1, calls)
		assert.Equal(t, "req-a", first.Header().Get(RequestIDHeader))
		assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
		assert.Equal(t, "req-b", second.Header().Get(RequestIDHeader))
		assert.Equal(t, []string{"req-b"}, second.Header().Values(RequestIDHeader))
	})

	t.Run("should give a generated ID to a hit without one", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/lockers", nil)

		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = coreport.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("should reuse the caller's request ID", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "req-123"})

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("should generate one when missing", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/", nil)

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
		assert.Equal(t, rec.Header().Get(RequestIDHeader), seen)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should turn a panic into a 500 response", func(t *testing.T) {
		log := mcore.NewMockLogger(t)
		log.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "kaboom" && fields["path"] == "/boom"
		})).Once()

		r := gin.New()
		r.Use(ErrorHandler(log))
		r.GET("/boom", func(*gin.Context) { panic("kaboom") })

		rec := do(r, http.MethodGet, "/boom", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
	})
}

func TestLogger(t *testing.T) {
	t.Run("should log client errors as warnings with the caller", func(t *testing.T) {
		log := mcore.NewMockLogger(t)
		log.EXPECT().Warn("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusNotFound && fields["user_id"] == uint64(5) && fields["route"] == "/missing"
		})).Once()

		r := gin.New()
		r.Use(Logger(log))
		r.GET("/missing", func(c *gin.Context) {
			SetIdentity(c, 5, "")
			c.Status(http.StatusNotFound)
		})

		do(r, http.MethodGet, "/missing", nil)
	})

	t.Run("should log successful requests as info", func(t *testing.T) {
		r := gin.New()
		r.Use(Logger(logger.NewNoopLogger()))
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ok", nil).Code)
	})
}
