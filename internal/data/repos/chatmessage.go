package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type ChatMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, messages []*domain.ChatMessage) ([]*domain.ChatMessage, error)
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.ChatMessage, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: baseLog.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*domain.ChatMessage) ([]*domain.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(messages) == 0 {
		return []*domain.ChatMessage{}, nil
	}
	for _, m := range messages {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatMessageRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*domain.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.ChatMessage
	if limit <= 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
