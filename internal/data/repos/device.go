package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type DeviceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, devices []*domain.Device) ([]*domain.Device, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Device, error)
}

type deviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDeviceRepo(db *gorm.DB, baseLog *logger.Logger) DeviceRepo {
	return &deviceRepo{db: db, log: baseLog.With("repo", "DeviceRepo")}
}

func (r *deviceRepo) Create(ctx context.Context, tx *gorm.DB, devices []*domain.Device) ([]*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(devices) == 0 {
		return []*domain.Device{}, nil
	}
	for _, d := range devices {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Device
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
