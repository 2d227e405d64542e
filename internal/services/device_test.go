package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
)

type fakeDeviceRepo struct {
	devices []*domain.Device
}

func (f *fakeDeviceRepo) Create(ctx context.Context, tx *gorm.DB, devices []*domain.Device) ([]*domain.Device, error) {
	for _, d := range devices {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		f.devices = append(f.devices, d)
	}
	return devices, nil
}

func (f *fakeDeviceRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Device, error) {
	var out []*domain.Device
	for _, d := range f.devices {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestDeviceListIconsAndDefaults(t *testing.T) {
	userID := uuid.New()
	sync := time.Now().Add(-time.Hour)
	repo := &fakeDeviceRepo{devices: []*domain.Device{
		{ID: uuid.New(), UserID: userID, Name: "Accu-Chek Guide", Type: "glucometer", Status: "connected", LastSync: &sync},
		{ID: uuid.New(), UserID: userID, Name: "Omron Evolv", Type: "blood_pressure_monitor", LastSync: &sync},
	}}
	svc := NewDeviceService(nil, testLogger(t), repo)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "device_thermostat", got[0].Icon)
	require.Equal(t, "favorite_border", got[1].Icon)
	require.Equal(t, "connected", got[1].Status, "missing status defaults to connected")
	require.NotEmpty(t, got[0].LastSync)
}

func TestDeviceRegister(t *testing.T) {
	repo := &fakeDeviceRepo{}
	svc := NewDeviceService(nil, testLogger(t), repo)
	userID := uuid.New()

	got, err := svc.Register(context.Background(), userID, DeviceInput{Name: "Accu-Chek Guide", Type: "glucometer"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, "device_thermostat", got.Icon)
	require.Equal(t, "connected", got.Status)

	require.Len(t, repo.devices, 1)
	require.Equal(t, userID, repo.devices[0].UserID)
	require.JSONEq(t, `{}`, string(repo.devices[0].ConnectionDetails))
}

func TestDeviceRegisterValidation(t *testing.T) {
	svc := NewDeviceService(nil, testLogger(t), &fakeDeviceRepo{})

	_, err := svc.Register(context.Background(), uuid.New(), DeviceInput{Name: " ", Type: "glucometer"})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)
}
