package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:           cfg.ServiceName,
		UserContextMiddleware: middleware.UserContext,
		TimeoutMiddleware:     middleware.Timeout,
		ReadingHandler:        handlers.Reading,
		AssistantHandler:      handlers.Assistant,
		DeviceHandler:         handlers.Device,
		UserHandler:           handlers.User,
	})
}
