package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/services"
)

type Services struct {
	Analysis  services.AnalysisService
	Reading   services.ReadingService
	Assistant services.AssistantService
	User      services.UserService
	Device    services.DeviceService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	analysisService := services.NewAnalysisService(db, log, clients.OpenAI, repos.AICallLog, cfg.AITimeout)
	readingService := services.NewReadingService(db, log, repos.BloodSugar, repos.BloodPressure, analysisService, clients.Cache)
	assistantService := services.NewAssistantService(db, log, clients.OpenAI, repos.ChatMessage, cfg.AITimeout)
	userService := services.NewUserService(db, log, repos.User)
	deviceService := services.NewDeviceService(db, log, repos.Device)

	return Services{
		Analysis:  analysisService,
		Reading:   readingService,
		Assistant: assistantService,
		User:      userService,
		Device:    deviceService,
	}
}
