package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/locker-rental/mocks/port/core"
	muse "github.com/amirhossein-jamali/locker-rental/mocks/port/usecase"
)

var startedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func activeSession(id, userID, lockerID uint64) *entity.Session {
	return &entity.Session{
		ID:            id,
		UserID:        userID,
		LockerID:      lockerID,
		Status:        entity.SessionActive,
		StartedAt:     startedAt,
		PlannedEndAt:  startedAt.Add(2 * time.Hour),
		AmountDue:     decimal.RequireFromString("5.00"),
		Currency:      "EUR",
		PaymentStatus: entity.PaymentNone,
		Items:         []string{"backpack"},
	}
}

func setupSessions(t *testing.T, userID uint64, now time.Time) (*gin.Engine, *muse.MockSessionUseCase) {
	sessions := muse.NewMockSessionUseCase(t)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	sessions.EXPECT().GetRemainingTime(mock.Anything, mock.Anything).
		RunAndReturn(func(s *entity.Session, now time.Time) time.Duration { return s.RemainingTime(now) }).
		Maybe()

	h := NewSessionHandler(sessions, tp, logger.NewNoopLogger())
	r := newRouter(userID, "")
	r.POST("/sessions", h.StartSession)
	r.GET("/sessions/:id", h.GetSession)
	r.GET("/sessions/:id/remaining", h.GetRemainingTime)
	r.PUT("/sessions/:id", h.UpdateSession)
	r.POST("/sessions/:id/unlock", h.UnlockLocker)
	r.GET("/me/sessions", h.ListMySessions)
	r.GET("/me/statistics", h.GetMyStatistics)
	return r, sessions
}

func TestStartSession(t *testing.T) {
	t.Run("should create a session for the caller", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().StartSession(mock.Anything, usecase.StartSessionRequest{
			UserID:               1,
			LockerID:             7,
			PlannedDurationHours: 2,
			Items:                []string{"backpack"},
		}).Return(activeSession(100, 1, 7), nil).Once()

		rec := serve(r, http.MethodPost, "/sessions", map[string]any{
			"locker_id":              7,
			"planned_duration_hours": 2,
			"items":                  []string{"backpack"},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[dto.SessionResponse](t, rec)
		assert.Equal(t, uint64(100), body.ID)
		assert.Equal(t, "5.00", body.AmountDue)
		assert.Equal(t, "active", body.Status)
		assert.Equal(t, int64(7200), body.RemainingSeconds)
	})

	t.Run("should answer 409 when the user already has an active session", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().StartSession(mock.Anything, mock.Anything).
			Return(nil, errs.NewLifecycleError("start_session", 0, 8, 1, errs.ErrSessionAlreadyActive)).Once()

		rec := serve(r, http.MethodPost, "/sessions", map[string]any{"locker_id": 8, "planned_duration_hours": 1})

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := errorBody(t, rec)
		assert.Equal(t, errs.CodeSessionAlreadyActive, body.Code)
		assert.Equal(t, "user already has an active session", body.Message)
	})

	t.Run("should answer 400 for an invalid duration", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().StartSession(mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidDuration).Once()

		rec := serve(r, http.MethodPost, "/sessions", map[string]any{"locker_id": 7, "planned_duration_hours": 25})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidDuration, errorBody(t, rec).Code)
	})

	t.Run("should answer 503 without leaking storage details", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().StartSession(mock.Anything, mock.Anything).
			Return(nil, errs.NewStorageError("create session", errors.New("dial tcp 10.0.0.5:5432"))).Once()

		rec := serve(r, http.MethodPost, "/sessions", map[string]any{"locker_id": 7, "planned_duration_hours": 1})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := errorBody(t, rec)
		assert.Equal(t, errs.CodeStorageUnavailable, body.Code)
		assert.NotContains(t, body.Message, "10.0.0.5")
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodPost, "/sessions", `{"locker_id": "seven"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, errorBody(t, rec).Code)
	})

	t.Run("should require an authenticated caller", func(t *testing.T) {
		r, _ := setupSessions(t, 0, startedAt)

		rec := serve(r, http.MethodPost, "/sessions", map[string]any{"locker_id": 7, "planned_duration_hours": 1})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("should return the caller's session with the remaining time", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt.Add(45*time.Minute))
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(activeSession(100, 1, 7), nil).Once()

		rec := serve(r, http.MethodGet, "/sessions/100/remaining", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.RemainingTimeResponse](t, rec)
		assert.Equal(t, int64(75*60), body.RemainingSeconds)
	})

	t.Run("should report zero remaining for an ended session", func(t *testing.T) {
		ended := activeSession(100, 1, 7)
		endedAt := startedAt.Add(30 * time.Minute)
		ended.Status = entity.SessionFinished
		ended.EndedAt = &endedAt

		r, sessions := setupSessions(t, 1, startedAt.Add(time.Hour))
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(ended, nil).Once()

		rec := serve(r, http.MethodGet, "/sessions/100", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.SessionResponse](t, rec)
		assert.Equal(t, "finished", body.Status)
		assert.Zero(t, body.RemainingSeconds)
		require.NotNil(t, body.EndedAt)
	})

	t.Run("should forbid another user's session", func(t *testing.T) {
		r, sessions := setupSessions(t, 2, startedAt)
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(activeSession(100, 1, 7), nil).Once()

		rec := serve(r, http.MethodGet, "/sessions/100", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, errs.CodeSessionNotOwned, errorBody(t, rec).Code)
	})

	t.Run("should answer 404 for an unknown session", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().GetSession(mock.Anything, uint64(404)).Return(nil, errs.ErrSessionNotFound).Once()

		rec := serve(r, http.MethodGet, "/sessions/404", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeSessionNotFound, errorBody(t, rec).Code)
	})

	t.Run("should reject a non numeric ID", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodGet, "/sessions/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateSession(t *testing.T) {
	t.Run("should end the session with the given payment status", func(t *testing.T) {
		finished := activeSession(100, 1, 7)
		endedAt := startedAt.Add(30 * time.Minute)
		finished.Status = entity.SessionFinished
		finished.EndedAt = &endedAt
		finished.AmountDue = decimal.RequireFromString("1.25")
		finished.PaymentStatus = entity.PaymentPaid

		r, sessions := setupSessions(t, 1, endedAt)
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(activeSession(100, 1, 7), nil).Once()
		sessions.EXPECT().EndSession(mock.Anything, uint64(100), entity.PaymentPaid).Return(finished, nil).Once()

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"status": "finished", "payment_status": "paid"})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.SessionResponse](t, rec)
		assert.Equal(t, "1.25", body.AmountDue)
		assert.Equal(t, "paid", body.PaymentStatus)
	})

	t.Run("should default the payment status to none", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(activeSession(100, 1, 7), nil).Once()
		sessions.EXPECT().EndSession(mock.Anything, uint64(100), entity.PaymentNone).
			Return(nil, errs.ErrSessionNotActive).Once()

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"status": "finished"})

		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
		assert.Equal(t, errs.CodeSessionNotActive, errorBody(t, rec).Code)
	})

	t.Run("should not let a user end someone else's session", func(t *testing.T) {
		r, sessions := setupSessions(t, 2, startedAt)
		sessions.EXPECT().GetSession(mock.Anything, uint64(100)).Return(activeSession(100, 1, 7), nil).Once()

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"status": "finished"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		sessions.AssertNotCalled(t, "EndSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid payment status before loading the session", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"status": "finished", "payment_status": "refunded"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidPaymentStatus, errorBody(t, rec).Code)
		sessions.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("should settle the payment of a terminal session", func(t *testing.T) {
		settled := activeSession(100, 1, 7)
		settled.Status = entity.SessionExpired
		settled.PaymentStatus = entity.PaymentPaid

		r, sessions := setupSessions(t, 1, startedAt.Add(3*time.Hour))
		sessions.EXPECT().SettlePayment(mock.Anything, uint64(100), uint64(1), entity.PaymentPaid).Return(settled, nil).Once()

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"payment_status": "paid"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "paid", decode[dto.SessionResponse](t, rec).PaymentStatus)
	})

	t.Run("should refuse other status transitions", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{"status": "expired"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, errorBody(t, rec).Code)
	})

	t.Run("should require status or payment status", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodPut, "/sessions/100", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnlockLocker(t *testing.T) {
	t.Run("should open the locker of the caller's session", func(t *testing.T) {
		openedAt := startedAt.Add(10 * time.Minute)
		sessionID := uint64(100)
		locker := &entity.Locker{
			ID:               7,
			Name:             "A-07",
			Status:           entity.LockerOccupied,
			PricePerHour:     decimal.RequireFromString("2.50"),
			LastOpenedAt:     &openedAt,
			CurrentSessionID: &sessionID,
		}

		r, sessions := setupSessions(t, 1, openedAt)
		sessions.EXPECT().UnlockLocker(mock.Anything, uint64(100), uint64(1), entity.AccessRFID).Return(locker, nil).Once()

		rec := serve(r, http.MethodPost, "/sessions/100/unlock", map[string]any{"method": "rfid"})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.LockerResponse](t, rec)
		assert.Equal(t, "occupied", body.Status)
		require.NotNil(t, body.LastOpenedAt)
		assert.True(t, openedAt.Equal(*body.LastOpenedAt))
	})

	t.Run("should require a method", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodPost, "/sessions/100/unlock", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListMySessions(t *testing.T) {
	t.Run("should list the whole history by default", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().ListUserSessions(mock.Anything, uint64(1)).
			Return([]*entity.Session{activeSession(2, 1, 7), activeSession(1, 1, 8)}, nil).Once()

		rec := serve(r, http.MethodGet, "/me/sessions", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]dto.SessionResponse](t, rec), 2)
	})

	t.Run("should return an empty list without an active session", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().GetActiveSession(mock.Anything, uint64(1)).Return(nil, nil).Once()

		rec := serve(r, http.MethodGet, "/me/sessions?status=active", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("should reject an unknown filter", func(t *testing.T) {
		r, _ := setupSessions(t, 1, startedAt)

		rec := serve(r, http.MethodGet, "/me/sessions?status=expired", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetMyStatistics(t *testing.T) {
	t.Run("should format the totals", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().GetUserStatistics(mock.Anything, uint64(1)).Return(&entity.UserStatistics{
			UserID:          1,
			TotalSessions:   2,
			ExpiredSessions: 1,
			TotalHours:      decimal.RequireFromString("2.5"),
			TotalAmountDue:  decimal.RequireFromString("6.25"),
			TotalAmountPaid: decimal.RequireFromString("1.25"),
		}, nil).Once()

		rec := serve(r, http.MethodGet, "/me/statistics", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.StatisticsResponse](t, rec)
		assert.Equal(t, "6.25", body.TotalAmountDue)
		assert.Equal(t, "2.5", body.TotalHours)
		assert.Equal(t, 1, body.ExpiredSessions)
	})

	t.Run("should answer 503 when storage fails", func(t *testing.T) {
		r, sessions := setupSessions(t, 1, startedAt)
		sessions.EXPECT().GetUserStatistics(mock.Anything, uint64(1)).
			Return(nil, errs.NewStorageError("list sessions", errors.New("connection refused"))).Once()

		rec := serve(r, http.MethodGet, "/me/statistics", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service temporarily unavailable", errorBody(t, rec).Message)
	})
}
