package app

import (
	"github.com/yungbote/healthtrack-backend/internal/middleware"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type Middleware struct {
	UserContext *middleware.UserContextMiddleware
	Timeout     *middleware.TimeoutMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		UserContext: middleware.NewUserContextMiddleware(log),
		Timeout:     middleware.NewTimeoutMiddleware(log, cfg.RequestTimeout),
	}
}
