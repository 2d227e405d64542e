package domain

import (
	"time"

	"github.com/google/uuid"
)

// AICallLog records every outbound model call, successful or not.
// Writes are best-effort; a failed log write never fails a request.
type AICallLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CallType   string     `gorm:"column:call_type;not null" json:"call_type"`
	Model      string     `gorm:"column:model;not null" json:"model"`
	Prompt     string     `gorm:"column:prompt" json:"prompt"`
	Response   string     `gorm:"column:response" json:"response"`
	Success    bool       `gorm:"column:success;not null" json:"success"`
	Error      string     `gorm:"column:error" json:"error"`
	DurationMS int64      `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
}

func (AICallLog) TableName() string {
	return "ai_call_log"
}
