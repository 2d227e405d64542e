package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedBloodSugarReading(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, value int, ts time.Time) *domain.BloodSugarReading {
	tb.Helper()
	r := &domain.BloodSugarReading{
		ID:         uuid.New(),
		UserID:     userID,
		Value:      value,
		Timestamp:  ts,
		Status:     "Normal",
		StatusType: "normal",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed blood sugar reading: %v", err)
	}
	return r
}

func SeedBloodPressureReading(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, systolic, diastolic int, ts time.Time) *domain.BloodPressureReading {
	tb.Helper()
	r := &domain.BloodPressureReading{
		ID:         uuid.New(),
		UserID:     userID,
		Systolic:   systolic,
		Diastolic:  diastolic,
		Timestamp:  ts,
		Status:     "Normal",
		StatusType: "normal",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed blood pressure reading: %v", err)
	}
	return r
}

func SeedDevice(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name, deviceType string) *domain.Device {
	tb.Helper()
	now := time.Now().UTC()
	d := &domain.Device{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Type:     deviceType,
		Status:   "connected",
		LastSync: &now,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed device: %v", err)
	}
	return d
}
