package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessions     usecase.SessionUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(
	sessions usecase.SessionUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// StartSession handles POST /sessions
func (h *SessionHandler) StartSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	session, err := h.sessions.StartSession(c.Request.Context(), usecase.StartSessionRequest{
		UserID:               userID,
		LockerID:             req.LockerID,
		PlannedDurationHours: req.PlannedDurationHours,
		Items:                req.Items,
	})
	if err != nil {
		writeError(c, h.logger, "start session", err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(session))
}

// GetSession handles GET /sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toResponse(session))
}

// GetRemainingTime handles GET /sessions/:id/remaining
func (h *SessionHandler) GetRemainingTime(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.RemainingTimeResponse{
		SessionID:        session.ID,
		PlannedEndAt:     session.PlannedEndAt,
		RemainingSeconds: int64(h.remaining(session) / time.Second),
	})
}

// UpdateSession handles PUT /sessions/:id. Status "finished" ends the session;
// a payment status alone settles the payment of a terminal session.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	switch req.Status {
	case string(entity.SessionFinished):
		payment := entity.PaymentNone
		if req.PaymentStatus != "" {
			parsed, err := entity.ParsePaymentStatus(req.PaymentStatus)
			if err != nil {
				writeError(c, h.logger, "end session", err)
				return
			}
			payment = parsed
		}

		if _, ok := h.loadOwned(c, sessionID, userID); !ok {
			return
		}

		session, err := h.sessions.EndSession(c.Request.Context(), sessionID, payment)
		if err != nil {
			writeError(c, h.logger, "end session", err)
			return
		}
		c.JSON(http.StatusOK, h.toResponse(session))

	case "":
		if req.PaymentStatus == "" {
			badRequest(c, "Either status or payment_status is required")
			return
		}
		payment, err := entity.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			writeError(c, h.logger, "settle payment", err)
			return
		}

		session, err := h.sessions.SettlePayment(c.Request.Context(), sessionID, userID, payment)
		if err != nil {
			writeError(c, h.logger, "settle payment", err)
			return
		}
		c.JSON(http.StatusOK, h.toResponse(session))

	default:
		writeError(c, h.logger, "update session",
			fmt.Errorf("%w: status can only be set to %q", errs.ErrInvalidRequest, entity.SessionFinished))
	}
}

// UnlockLocker handles POST /sessions/:id/unlock
func (h *SessionHandler) UnlockLocker(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	locker, err := h.sessions.UnlockLocker(c.Request.Context(), sessionID, userID, entity.AccessMethod(req.Method))
	if err != nil {
		writeError(c, h.logger, "unlock locker", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLockerResponse(locker))
}

// ListMySessions handles GET /me/sessions?status=active|all
func (h *SessionHandler) ListMySessions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var sessions []*entity.Session
	switch c.DefaultQuery("status", "all") {
	case "all":
		list, err := h.sessions.ListUserSessions(c.Request.Context(), userID)
		if err != nil {
			writeError(c, h.logger, "list sessions", err)
			return
		}
		sessions = list
	case string(entity.SessionActive):
		active, err := h.sessions.GetActiveSession(c.Request.Context(), userID)
		if err != nil {
			writeError(c, h.logger, "get active session", err)
			return
		}
		if active != nil {
			sessions = append(sessions, active)
		}
	default:
		badRequest(c, "status must be one of: active, all")
		return
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, h.toResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// GetMyStatistics handles GET /me/statistics
func (h *SessionHandler) GetMyStatistics(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stats, err := h.sessions.GetUserStatistics(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, "get statistics", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatisticsResponse(stats))
}

// ownedSession loads the session named in the path and checks the caller owns it
func (h *SessionHandler) ownedSession(c *gin.Context) (*entity.Session, bool) {
	userID, ok := callerID(c)
	if !ok {
		return nil, false
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	return h.loadOwned(c, sessionID, userID)
}

func (h *SessionHandler) loadOwned(c *gin.Context, sessionID, userID uint64) (*entity.Session, bool) {
	session, err := h.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, h.logger, "get session", err)
		return nil, false
	}
	if session.UserID != userID {
		writeError(c, h.logger, "get session", errs.ErrSessionNotOwned)
		return nil, false
	}
	return session, true
}

func (h *SessionHandler) toResponse(s *entity.Session) dto.SessionResponse {
	return dto.NewSessionResponse(s, h.remaining(s))
}

// remaining is zero once the session left Active, whatever its planned end
func (h *SessionHandler) remaining(s *entity.Session) time.Duration {
	if !s.IsActive() {
		return 0
	}
	return h.sessions.GetRemainingTime(s, h.timeProvider.Now())
}
