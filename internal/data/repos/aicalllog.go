package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type AICallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*domain.AICallLog) ([]*domain.AICallLog, error)
}

type aiCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAICallLogRepo(db *gorm.DB, baseLog *logger.Logger) AICallLogRepo {
	return &aiCallLogRepo{db: db, log: baseLog.With("repo", "AICallLogRepo")}
}

func (r *aiCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*domain.AICallLog) ([]*domain.AICallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*domain.AICallLog{}, nil
	}
	for _, l := range logs {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
