package middleware

import (
	"merval-chat-service/pkg/log"
	"merval-chat-service/pkg/token"
)

// Config holds middleware knobs.
type Config struct {
	RateLimitEnabled bool
	RateLimitPerMin  int
}

type Middleware struct {
	l          log.Logger
	jwtManager *token.Manager
	limiter    *rateLimiter
	cfg        Config
}

func New(l log.Logger, jwtManager *token.Manager, cfg Config) Middleware {
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 30
	}
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(cfg.RateLimitPerMin),
		cfg:        cfg,
	}
}
