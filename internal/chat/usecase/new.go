package usecase

import (
	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/responder"
	"merval-chat-service/internal/userctx"
	pkgLog "merval-chat-service/pkg/log"
)

// Config holds chat behavior knobs.
type Config struct {
	HistoryWindow    int // messages loaded into the completion context
	MaxMessageLength int
}

type implUseCase struct {
	l         pkgLog.Logger
	store     repository.Store
	fetcher   userctx.Fetcher
	responder responder.Responder
	cfg       Config
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	store repository.Store,
	fetcher userctx.Fetcher,
	resp responder.Responder,
	cfg Config,
) *implUseCase {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = 10
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = 2000
	}
	return &implUseCase{
		l:         l,
		store:     store,
		fetcher:   fetcher,
		responder: resp,
		cfg:       cfg,
	}
}
