package middleware

import (
	"hardware-ai-orchestrator/config"
	"hardware-ai-orchestrator/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
