package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type DeviceView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Icon     string    `json:"icon"`
	LastSync string    `json:"lastSync"`
	Status   string    `json:"status"`
}

type DeviceInput struct {
	Name              string
	Type              string
	ConnectionDetails json.RawMessage
}

type DeviceService interface {
	List(ctx context.Context, userID uuid.UUID) ([]DeviceView, error)
	Register(ctx context.Context, userID uuid.UUID, in DeviceInput) (*DeviceView, error)
}

type deviceService struct {
	db         *gorm.DB
	log        *logger.Logger
	deviceRepo repos.DeviceRepo
}

func NewDeviceService(db *gorm.DB, log *logger.Logger, deviceRepo repos.DeviceRepo) DeviceService {
	return &deviceService{
		db:         db,
		log:        log.With("service", "DeviceService"),
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) List(ctx context.Context, userID uuid.UUID) ([]DeviceView, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load devices: %w", err)
	}

	now := time.Now()
	views := make([]DeviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, deviceView(d, now))
	}
	return views, nil
}

func (s *deviceService) Register(ctx context.Context, userID uuid.UUID, in DeviceInput) (*DeviceView, error) {
	name := strings.TrimSpace(in.Name)
	deviceType := strings.TrimSpace(in.Type)
	if name == "" || deviceType == "" {
		return nil, fmt.Errorf("%w: name and type are required", pkgerrors.ErrInvalidArgument)
	}

	details := in.ConnectionDetails
	if len(details) == 0 {
		details = json.RawMessage(`{}`)
	}

	now := time.Now()
	created, err := s.deviceRepo.Create(ctx, nil, []*domain.Device{
		{
			UserID:            userID,
			Name:              name,
			Type:              deviceType,
			Status:            "connected",
			LastSync:          &now,
			ConnectionDetails: datatypes.JSON(details),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("register device: %w", err)
	}

	view := deviceView(created[0], now)
	return &view, nil
}

func deviceView(d *domain.Device, now time.Time) DeviceView {
	lastSync := now
	if d.LastSync != nil {
		lastSync = *d.LastSync
	}
	status := d.Status
	if status == "" {
		status = "connected"
	}
	return DeviceView{
		ID:       d.ID,
		Name:     d.Name,
		Type:     d.Type,
		Icon:     deviceIcon(d.Type),
		LastSync: FormatTimestamp(lastSync, now),
		Status:   status,
	}
}

func deviceIcon(deviceType string) string {
	if deviceType == "glucometer" {
		return "device_thermostat"
	}
	return "favorite_border"
}
