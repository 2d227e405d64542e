package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Device struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string         `gorm:"not null;column:name" json:"name"`
	Type              string         `gorm:"not null;column:type" json:"type"`
	Status            string         `gorm:"column:status" json:"status"`
	LastSync          *time.Time     `gorm:"column:last_sync" json:"last_sync,omitempty"`
	ConnectionDetails datatypes.JSON `gorm:"type:jsonb;column:connection_details" json:"connection_details"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
}

func (Device) TableName() string {
	return "device"
}
