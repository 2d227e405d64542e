package app

import (
	"time"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/utils"
)

type Config struct {
	ServiceName    string
	Port           string
	AITimeout      time.Duration
	RequestTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	serviceName := utils.GetEnv("SERVICE_NAME", "healthtrack-backend", log)
	port := utils.GetEnv("PORT", "8080", log)
	aiTimeoutSeconds := utils.GetEnvAsInt("AI_TIMEOUT_SECONDS", 50, log)
	requestTimeoutSeconds := utils.GetEnvAsInt("REQUEST_TIMEOUT_SECONDS", 55, log)
	return Config{
		ServiceName:    serviceName,
		Port:           port,
		AITimeout:      time.Duration(aiTimeoutSeconds) * time.Second,
		RequestTimeout: time.Duration(requestTimeoutSeconds) * time.Second,
	}
}
