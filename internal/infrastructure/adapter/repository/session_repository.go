package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SessionRepository implements the session store using GORM
type SessionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func sessionToEntity(m *model.Session) *entity.Session {
	return &entity.Session{
		ID:            m.ID,
		UserID:        m.UserID,
		LockerID:      m.LockerID,
		Status:        entity.SessionStatus(m.Status),
		StartedAt:     m.StartedAt,
		PlannedEndAt:  m.PlannedEndAt,
		EndedAt:       m.EndedAt,
		AmountDue:     m.AmountDue,
		Currency:      m.Currency,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		Items:         m.Items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func sessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		ID:            s.ID,
		UserID:        s.UserID,
		LockerID:      s.LockerID,
		Status:        string(s.Status),
		StartedAt:     s.StartedAt,
		PlannedEndAt:  s.PlannedEndAt,
		EndedAt:       s.EndedAt,
		AmountDue:     s.AmountDue,
		Currency:      s.Currency,
		PaymentStatus: string(s.PaymentStatus),
		Items:         s.Items,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// handleDatabaseError logs and translates a failed session query
func (r *SessionRepository) handleDatabaseError(operation string, err error, sessionID uint64) error {
	mapped := r.errorClassifier.ToDomain(operation, err, errs.ErrSessionNotFound)
	if errs.IsStorageError(mapped) && !isContextError(err) {
		r.logger.Error("Session query failed", map[string]any{
			"operation":  operation,
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
	return mapped
}

// Create persists a new session and writes the assigned ID back to the entity
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	m := sessionToModel(session)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("create session", err, 0)
	}

	session.ID = m.ID
	r.logger.Debug("Session stored", map[string]any{
		"session_id": m.ID,
		"user_id":    m.UserID,
		"locker_id":  m.LockerID,
	})
	return nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id uint64) (*entity.Session, error) {
	var m model.Session
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("get session", err, id)
	}
	return sessionToEntity(&m), nil
}

// FindActiveByUser returns the user's active session or nil
func (r *SessionRepository) FindActiveByUser(ctx context.Context, userID uint64) (*entity.Session, error) {
	return r.findActive(ctx, "find active session by user", "user_id = ?", userID)
}

// FindActiveByLocker returns the active session on a locker or nil
func (r *SessionRepository) FindActiveByLocker(ctx context.Context, lockerID uint64) (*entity.Session, error) {
	return r.findActive(ctx, "find active session by locker", "locker_id = ?", lockerID)
}

func (r *SessionRepository) findActive(ctx context.Context, operation string, query string, arg uint64) (*entity.Session, error) {
	var models []model.Session
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.SessionActive)).
		Where(query, arg).
		Order("started_at DESC").
		Limit(1).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError(operation, err, 0)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return sessionToEntity(&models[0]), nil
}

// Update overwrites the mutable columns of a session. Items are fixed at creation.
func (r *SessionRepository) Update(ctx context.Context, session *entity.Session) error {
	result := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"status":         string(session.Status),
			"planned_end_at": session.PlannedEndAt,
			"ended_at":       session.EndedAt,
			"amount_due":     session.AmountDue,
			"payment_status": string(session.PaymentStatus),
			"updated_at":     session.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("update session", result.Error, session.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSessionNotFound
	}
	return nil
}

// ListByUser returns the user's sessions, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Session, error) {
	var models []model.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("list sessions by user", err, 0)
	}
	return sessionsToEntities(models), nil
}

// ListActive returns every active session
func (r *SessionRepository) ListActive(ctx context.Context) ([]*entity.Session, error) {
	var models []model.Session
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.SessionActive)).
		Order("planned_end_at").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("list active sessions", err, 0)
	}
	return sessionsToEntities(models), nil
}

// ListActiveEndedBefore returns active sessions planned to end at or before cutoff.
// Times are stored in UTC and sqlite compares them as text, so the cutoff is
// converted to UTC as well.
func (r *SessionRepository) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*entity.Session, error) {
	var models []model.Session
	err := r.db.WithContext(ctx).
		Where("status = ? AND planned_end_at <= ?", string(entity.SessionActive), cutoff.UTC()).
		Order("planned_end_at").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("list overdue sessions", err, 0)
	}
	return sessionsToEntities(models), nil
}

func sessionsToEntities(models []model.Session) []*entity.Session {
	sessions := make([]*entity.Session, 0, len(models))
	for i := range models {
		sessions = append(sessions, sessionToEntity(&models[i]))
	}
	return sessions
}
