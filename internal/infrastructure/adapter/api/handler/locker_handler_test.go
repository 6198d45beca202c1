package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	muse "github.com/amirhossein-jamali/locker-rental/mocks/port/usecase"
)

func setupLockers(t *testing.T) (*gin.Engine, *muse.MockLockerUseCase) {
	lockers := muse.NewMockLockerUseCase(t)
	h := NewLockerHandler(lockers, logger.NewNoopLogger())

	r := newRouter(1, "admin")
	r.GET("/lockers", h.ListLockers)
	r.GET("/lockers/:id", h.GetLocker)
	r.PUT("/lockers/:id", h.UpdateLocker)
	return r, lockers
}

func testLocker(id uint64, status entity.LockerStatus) *entity.Locker {
	return &entity.Locker{ID: id, Name: "A-01", Status: status, PricePerHour: decimal.RequireFromString("2.5")}
}

func TestListLockers(t *testing.T) {
	t.Run("should list available lockers", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().ListAvailable(mock.Anything).Return([]*entity.Locker{testLocker(1, entity.LockerAvailable)}, nil).Once()

		rec := serve(r, http.MethodGet, "/lockers?status=available", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[[]dto.LockerResponse](t, rec)
		require.Len(t, body, 1)
		assert.Equal(t, "2.50", body[0].PricePerHour)
		assert.Nil(t, body[0].CurrentSessionID)
	})

	t.Run("should list every locker without a filter", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().List(mock.Anything).Return(nil, nil).Once()

		rec := serve(r, http.MethodGet, "/lockers", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("should reject an unknown filter", func(t *testing.T) {
		r, _ := setupLockers(t)

		rec := serve(r, http.MethodGet, "/lockers?status=broken", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 503 when storage fails", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().List(mock.Anything).Return(nil, errs.NewStorageError("list lockers", errors.New("timeout"))).Once()

		rec := serve(r, http.MethodGet, "/lockers", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetLocker(t *testing.T) {
	t.Run("should return the locker", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().Get(mock.Anything, uint64(3)).Return(testLocker(3, entity.LockerMaintenance), nil).Once()

		rec := serve(r, http.MethodGet, "/lockers/3", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "maintenance", decode[dto.LockerResponse](t, rec).Status)
	})

	t.Run("should answer 404 for an unknown locker", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().Get(mock.Anything, uint64(9)).Return(nil, errs.ErrLockerNotFound).Once()

		rec := serve(r, http.MethodGet, "/lockers/9", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeLockerNotFound, errorBody(t, rec).Code)
	})
}

func TestUpdateLocker(t *testing.T) {
	t.Run("should apply the status change", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().SetStatus(mock.Anything, uint64(3), entity.LockerOutOfOrder).
			Return(testLocker(3, entity.LockerOutOfOrder), nil).Once()

		rec := serve(r, http.MethodPut, "/lockers/3", map[string]any{"status": "out_of_order"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "out_of_order", decode[dto.LockerResponse](t, rec).Status)
	})

	t.Run("should answer 409 for an occupied locker", func(t *testing.T) {
		r, lockers := setupLockers(t)
		lockers.EXPECT().SetStatus(mock.Anything, uint64(3), entity.LockerMaintenance).
			Return(nil, errs.ErrLockerOccupied).Once()

		rec := serve(r, http.MethodPut, "/lockers/3", map[string]any{"status": "maintenance"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errs.CodeLockerOccupied, errorBody(t, rec).Code)
	})

	t.Run("should require a status", func(t *testing.T) {
		r, _ := setupLockers(t)

		rec := serve(r, http.MethodPut, "/lockers/3", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
