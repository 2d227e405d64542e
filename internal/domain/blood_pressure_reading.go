package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BloodPressureReading struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Systolic   int            `gorm:"not null;column:systolic" json:"systolic"`
	Diastolic  int            `gorm:"not null;column:diastolic" json:"diastolic"`
	Timestamp  time.Time      `gorm:"not null;index;column:timestamp" json:"timestamp"`
	Notes      string         `gorm:"column:notes" json:"notes"`
	Status     string         `gorm:"column:status" json:"status"`
	StatusType string         `gorm:"column:status_type" json:"status_type"`
	Analysis   datatypes.JSON `gorm:"type:jsonb;column:ai_analysis" json:"ai_analysis"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (BloodPressureReading) TableName() string {
	return "blood_pressure_reading"
}
