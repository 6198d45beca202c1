package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
)

// LockerHandler handles locker-related HTTP requests
type LockerHandler struct {
	lockers usecase.LockerUseCase
	logger  coreport.Logger
}

// NewLockerHandler creates a new locker handler instance
func NewLockerHandler(lockers usecase.LockerUseCase, logger coreport.Logger) *LockerHandler {
	return &LockerHandler{
		lockers: lockers,
		logger:  logger,
	}
}

// ListLockers handles GET /lockers?status=available
func (h *LockerHandler) ListLockers(c *gin.Context) {
	var (
		lockers []*entity.Locker
		err     error
	)

	switch c.DefaultQuery("status", "all") {
	case "all":
		lockers, err = h.lockers.List(c.Request.Context())
	case string(entity.LockerAvailable):
		lockers, err = h.lockers.ListAvailable(c.Request.Context())
	default:
		badRequest(c, "status must be one of: available, all")
		return
	}
	if err != nil {
		writeError(c, h.logger, "list lockers", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLockerListResponse(lockers))
}

// GetLocker handles GET /lockers/:id
func (h *LockerHandler) GetLocker(c *gin.Context) {
	lockerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	locker, err := h.lockers.Get(c.Request.Context(), lockerID)
	if err != nil {
		writeError(c, h.logger, "get locker", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLockerResponse(locker))
}

// UpdateLocker handles PUT /lockers/:id
func (h *LockerHandler) UpdateLocker(c *gin.Context) {
	lockerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	locker, err := h.lockers.SetStatus(c.Request.Context(), lockerID, entity.LockerStatus(req.Status))
	if err != nil {
		writeError(c, h.logger, "set locker status", err)
		return
	}

	h.logger.Info("Locker status changed", map[string]any{
		"locker_id": lockerID,
		"status":    string(locker.Status),
	})
	c.JSON(http.StatusOK, dto.NewLockerResponse(locker))
}
