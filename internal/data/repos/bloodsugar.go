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

type BloodSugarRepo interface {
	Create(ctx context.Context, tx *gorm.DB, readings []*domain.BloodSugarReading) ([]*domain.BloodSugarReading, error)
	// ListRecent returns up to limit readings, most recent first.
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.BloodSugarReading, error)
	Latest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.BloodSugarReading, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.BloodSugarReading, error)
}

type bloodSugarRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBloodSugarRepo(db *gorm.DB, baseLog *logger.Logger) BloodSugarRepo {
	return &bloodSugarRepo{db: db, log: baseLog.With("repo", "BloodSugarRepo")}
}

func (r *bloodSugarRepo) Create(ctx context.Context, tx *gorm.DB, readings []*domain.BloodSugarReading) ([]*domain.BloodSugarReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(readings) == 0 {
		return []*domain.BloodSugarReading{}, nil
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

func (r *bloodSugarRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.BloodSugarReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.BloodSugarReading
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

func (r *bloodSugarRepo) Latest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.BloodSugarReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.BloodSugarReading
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

func (r *bloodSugarRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.BloodSugarReading, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.BloodSugarReading
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
