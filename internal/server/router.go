package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/healthtrack-backend/internal/handlers"
	"github.com/yungbote/healthtrack-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName string

	UserContextMiddleware *middleware.UserContextMiddleware
	TimeoutMiddleware     *middleware.TimeoutMiddleware

	ReadingHandler   *handlers.ReadingHandler
	AssistantHandler *handlers.AssistantHandler
	DeviceHandler    *handlers.DeviceHandler
	UserHandler      *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-ID"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || API       ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.TimeoutMiddleware.Deadline())
	api.Use(cfg.UserContextMiddleware.Require())
	{
		// Readings
		api.POST("/readings/blood-sugar", cfg.ReadingHandler.CreateBloodSugar)
		api.GET("/readings/blood-sugar", cfg.ReadingHandler.BloodSugarChart)
		api.POST("/readings/blood-pressure", cfg.ReadingHandler.CreateBloodPressure)
		api.GET("/readings/blood-pressure", cfg.ReadingHandler.BloodPressureChart)
		api.GET("/readings/summary", cfg.ReadingHandler.Summary)
		api.GET("/readings/recent", cfg.ReadingHandler.Recent)
		api.GET("/readings/history", cfg.ReadingHandler.History)

		// AI assistant
		api.POST("/ai/ask", cfg.AssistantHandler.Ask)
		api.POST("/ai/analyze-blood-sugar", cfg.AssistantHandler.AnalyzeBloodSugar)
		api.POST("/ai/analyze-blood-pressure", cfg.AssistantHandler.AnalyzeBloodPressure)

		// Devices
		api.GET("/devices", cfg.DeviceHandler.List)
		api.POST("/devices", cfg.DeviceHandler.Register)

		// Profile
		api.GET("/profile", cfg.UserHandler.GetProfile)
		api.PATCH("/profile", cfg.UserHandler.UpdateProfile)
	}

	return router
}
