package repository

import (
	"context"

	"github.com/mark47B/iam-service/internal/domain/entity"
)

type UserRepository interface {
	// Пользователи тенанта из ids, у которых disabled == currentDisabled
	FindAllByDisabled(ctx context.Context, tenantID string, ids []string, currentDisabled bool) ([]entity.User, error)
	UpdateStatus(ctx context.Context, id string, disabled bool, actor entity.ActingUser) error
	Get(ctx context.Context, tenantID, id string) (entity.User, error)
	List(ctx context.Context, tenantID string, filter entity.UserFilter) ([]entity.User, error)
}

type AuditRepository interface {
	Append(ctx context.Context, event entity.AuditEvent) error
}
