package app

import (
	"github.com/yungbote/healthtrack-backend/internal/handlers"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type Handlers struct {
	Reading   *handlers.ReadingHandler
	Assistant *handlers.AssistantHandler
	Device    *handlers.DeviceHandler
	User      *handlers.UserHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Reading:   handlers.NewReadingHandler(services.Reading),
		Assistant: handlers.NewAssistantHandler(services.Assistant, services.Analysis),
		Device:    handlers.NewDeviceHandler(services.Device),
		User:      handlers.NewUserHandler(services.User),
	}
}
