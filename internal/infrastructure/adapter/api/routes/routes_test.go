package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/time"
	muse "github.com/amirhossein-jamali/locker-rental/mocks/port/usecase"
)

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	tp := timeadapter.NewRealTimeProvider()
	tokens := auth.NewTokenManager("secret", "locker-rental", 60, tp)

	sessions := muse.NewMockSessionUseCase(t)
	lockers := muse.NewMockLockerUseCase(t)

	opts := Options{
		Identity:       middleware.Auth(tokens),
		RateLimit:      1000,
		RateBurst:      1000,
		LockerCacheTTL: time.Minute,
	}
	router := gin.New()
	SetupMiddlewares(router, log, opts)
	SetupRoutes(router, Handlers{
		Sessions: handler.NewSessionHandler(sessions, tp, log),
		Lockers:  handler.NewLockerHandler(lockers, log),
		Health: handler.NewHealthHandler(time.Second, log).
			AddCheck("database", func(context.Context) error { return nil }),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
	}, opts)

	userToken, _, err := tokens.GenerateToken(1, "")
	require.NoError(t, err)
	adminToken, _, err := tokens.GenerateToken(2, auth.RoleAdmin)
	require.NoError(t, err)

	call := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	available := []*entity.Locker{{ID: 1, Name: "A-01", Status: entity.LockerAvailable, PricePerHour: decimal.RequireFromString("2.50")}}

	t.Run("should serve health and metrics without a token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call(http.MethodGet, "/health", "", "").Code)
		rec := call(http.MethodGet, "/metrics", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "# metrics", rec.Body.String())
	})

	t.Run("should require a token on the API", func(t *testing.T) {
		rec := call(http.MethodGet, "/lockers", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("should cache locker listings until a session changes", func(t *testing.T) {
		lockers.EXPECT().ListAvailable(mock.Anything).Return(available, nil).Twice()

		assert.Equal(t, http.StatusOK, call(http.MethodGet, "/lockers?status=available", userToken, "").Code)
		assert.Equal(t, http.StatusOK, call(http.MethodGet, "/lockers?status=available", userToken, "").Code)

		session := &entity.Session{
			ID: 10, UserID: 1, LockerID: 1, Status: entity.SessionActive,
			StartedAt: time.Now(), PlannedEndAt: time.Now().Add(time.Hour),
			AmountDue: decimal.RequireFromString("2.50"), PaymentStatus: entity.PaymentNone,
		}
		sessions.EXPECT().StartSession(mock.Anything, mock.Anything).Return(session, nil).Once()
		sessions.EXPECT().GetRemainingTime(mock.Anything, mock.Anything).Return(time.Hour).Once()

		rec := call(http.MethodPost, "/sessions", userToken, `{"locker_id":1,"planned_duration_hours":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		assert.Equal(t, http.StatusOK, call(http.MethodGet, "/lockers?status=available", userToken, "").Code)
	})

	t.Run("should only let admins change a locker status", func(t *testing.T) {
		rec := call(http.MethodPut, "/lockers/1", userToken, `{"status":"maintenance"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		lockers.EXPECT().SetStatus(mock.Anything, uint64(1), entity.LockerMaintenance).
			Return(&entity.Locker{ID: 1, Name: "A-01", Status: entity.LockerMaintenance, PricePerHour: decimal.RequireFromString("2.50")}, nil).Once()

		rec = call(http.MethodPut, "/lockers/1", adminToken, `{"status":"maintenance"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should route the caller's history", func(t *testing.T) {
		sessions.EXPECT().ListUserSessions(mock.Anything, uint64(1)).Return(nil, nil).Once()

		rec := call(http.MethodGet, "/me/sessions", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
