package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type BloodPressureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, readings []*domain.BloodPressureReading) ([]*domain.BloodPressureReading, error)
	// ListRecent returns up to limit readings, most recent first.
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.BloodPressureReading, error)
	Latest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.BloodPressureReading, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.BloodPressureReading, error)
}

type bloodPressureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBloodPressureRepo(db *gorm.DB, baseLog *logger.Logger) BloodPressureRepo {
	return &bloodPressureRepo{db: db, log: baseLog.With("repo", "BloodPressureRepo")}
}

func (r *bloodPressureRepo) Create(ctx context.Context, tx *gorm.DB, readings []*domain.BloodPressureReading) ([]*domain.BloodPressureReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(readings) == 0 {
		return []*domain.BloodPressureReading{}, nil
	}
	for _, reading := range readings {
		if reading.ID == uuid.Nil {
			reading.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *bloodPressureRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.BloodPressureReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.BloodPressureReading
	if limit <= 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bloodPressureRepo) Latest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.BloodPressureReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.BloodPressureReading
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *bloodPressureRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.BloodPressureReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.BloodPressureReading
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}
