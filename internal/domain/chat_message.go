package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage records one assistant exchange (question + answer).
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string    `gorm:"not null;column:message" json:"message"`
	Response  string    `gorm:"not null;column:response" json:"response"`
	Category  string    `gorm:"column:category" json:"category"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
