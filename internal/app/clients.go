package app

import (
	"github.com/yungbote/healthtrack-backend/internal/clients/openai"
	"github.com/yungbote/healthtrack-backend/internal/clients/rediscache"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type Clients struct {
	OpenAI openai.Client
	Cache  rediscache.Cache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	openaiClient, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, err
	}

	// Caching is optional; without redis every dashboard read recomputes.
	cache, err := rediscache.New(log)
	if err != nil {
		log.Warn("Redis unavailable, caching disabled", "error", err)
		cache = nil
	}

	return Clients{OpenAI: openaiClient, Cache: cache}, nil
}
