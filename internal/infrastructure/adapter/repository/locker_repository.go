package repository

import (
	"context"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LockerRepository implements the locker registry using GORM
type LockerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.LockerRepository = (*LockerRepository)(nil)

// NewLockerRepository creates a new LockerRepository instance
func NewLockerRepository(db *gorm.DB, logger coreport.Logger) *LockerRepository {
	return &LockerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func lockerToEntity(m *model.Locker) *entity.Locker {
	return &entity.Locker{
		ID:               m.ID,
		Name:             m.Name,
		Status:           entity.LockerStatus(m.Status),
		PricePerHour:     m.PricePerHour,
		LastOpenedAt:     m.LastOpenedAt,
		CurrentSessionID: m.CurrentSessionID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func lockerToModel(l *entity.Locker) *model.Locker {
	return &model.Locker{
		ID:               l.ID,
		Name:             l.Name,
		Status:           string(l.Status),
		PricePerHour:     l.PricePerHour,
		LastOpenedAt:     l.LastOpenedAt,
		CurrentSessionID: l.CurrentSessionID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// handleDatabaseError logs and translates a failed locker query
func (r *LockerRepository) handleDatabaseError(operation string, err error, lockerID uint64) error {
	mapped := r.errorClassifier.ToDomain(operation, err, errs.ErrLockerNotFound)
	if errs.IsStorageError(mapped) && !isContextError(err) {
		r.logger.Error("Locker query failed", map[string]any{
			"operation": operation,
			"locker_id": lockerID,
			"error":     err.Error(),
		})
	}
	return mapped
}

// GetByID retrieves a locker by ID
func (r *LockerRepository) GetByID(ctx context.Context, id uint64) (*entity.Locker, error) {
	var m model.Locker
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("get locker", err, id)
	}
	return lockerToEntity(&m), nil
}

// GetByName retrieves a locker by its display name
func (r *LockerRepository) GetByName(ctx context.Context, name string) (*entity.Locker, error) {
	var m model.Locker
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("get locker by name", err, 0)
	}
	return lockerToEntity(&m), nil
}

// ListAvailable returns every available locker
func (r *LockerRepository) ListAvailable(ctx context.Context) ([]*entity.Locker, error) {
	var models []model.Locker
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.LockerAvailable)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("list available lockers", err, 0)
	}
	return lockersToEntities(models), nil
}

// ListAll returns every locker ordered by ID
func (r *LockerRepository) ListAll(ctx context.Context) ([]*entity.Locker, error) {
	var models []model.Locker
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("list lockers", err, 0)
	}
	return lockersToEntities(models), nil
}

// Create provisions a locker and writes the assigned ID back to the entity
func (r *LockerRepository) Create(ctx context.Context, locker *entity.Locker) error {
	m := lockerToModel(locker)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("create locker", err, 0)
	}

	locker.ID = m.ID
	r.logger.Info("Locker created", map[string]any{
		"locker_id":      m.ID,
		"name":           m.Name,
		"price_per_hour": entity.FormatMoney(m.PricePerHour),
	})
	return nil
}

// Update overwrites the mutable columns of a locker
func (r *LockerRepository) Update(ctx context.Context, locker *entity.Locker) error {
	result := r.db.WithContext(ctx).Model(&model.Locker{}).
		Where("id = ?", locker.ID).
		Updates(map[string]any{
			"status":             string(locker.Status),
			"price_per_hour":     locker.PricePerHour,
			"last_opened_at":     locker.LastOpenedAt,
			"current_session_id": locker.CurrentSessionID,
			"updated_at":         locker.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("update locker", result.Error, locker.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockerNotFound
	}
	return nil
}

// SetStatus changes only the status column
func (r *LockerRepository) SetStatus(ctx context.Context, id uint64, status entity.LockerStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Locker{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return r.handleDatabaseError("set locker status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockerNotFound
	}

	r.logger.Debug("Locker status changed", map[string]any{
		"locker_id": id,
		"status":    string(status),
	})
	return nil
}

func lockersToEntities(models []model.Locker) []*entity.Locker {
	lockers := make([]*entity.Locker, 0, len(models))
	for i := range models {
		lockers = append(lockers, lockerToEntity(&models[i]))
	}
	return lockers
}
