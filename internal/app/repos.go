package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type Repos struct {
	User          repos.UserRepo
	BloodSugar    repos.BloodSugarRepo
	BloodPressure repos.BloodPressureRepo
	Device        repos.DeviceRepo
	ChatMessage   repos.ChatMessageRepo
	AICallLog     repos.AICallLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:          repos.NewUserRepo(db, log),
		BloodSugar:    repos.NewBloodSugarRepo(db, log),
		BloodPressure: repos.NewBloodPressureRepo(db, log),
		Device:        repos.NewDeviceRepo(db, log),
		ChatMessage:   repos.NewChatMessageRepo(db, log),
		AICallLog:     repos.NewAICallLogRepo(db, log),
	}
}
