package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"column:name" json:"name"`
	Email       string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Age         *int           `gorm:"column:age" json:"age,omitempty"`
	Gender      string         `gorm:"column:gender" json:"gender"`
	Height      *int           `gorm:"column:height" json:"height,omitempty"`
	Weight      *int           `gorm:"column:weight" json:"weight,omitempty"`
	Conditions  datatypes.JSON `gorm:"type:jsonb;column:conditions" json:"conditions"`
	Medications datatypes.JSON `gorm:"type:jsonb;column:medications" json:"medications"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
