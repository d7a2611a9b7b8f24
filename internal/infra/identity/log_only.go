package identity

import (
	"context"
	"log/slog"

	"github.com/mark47B/iam-service/internal/domain/repository"
)

var _ repository.IdentityProvider = (*LogOnly)(nil)

// LogOnly используется, когда провайдер не настроен (локальная разработка)
type LogOnly struct {
	log *slog.Logger
}

func NewLogOnly(log *slog.Logger) *LogOnly {
	return &LogOnly{log: log}
}

func (p *LogOnly) Enable(_ context.Context, authenticationUID string) error {
	p.log.Info("identity provider not configured, skipping enable", slog.String("authentication_uid", authenticationUID))
	return nil
}

func (p *LogOnly) Disable(_ context.Context, authenticationUID string) error {
	p.log.Info("identity provider not configured, skipping disable", slog.String("authentication_uid", authenticationUID))
	return nil
}
