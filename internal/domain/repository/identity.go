package repository

import "context"

// IdentityProvider — внешний сервис аутентификации
type IdentityProvider interface {
	Enable(ctx context.Context, authenticationUID string) error
	Disable(ctx context.Context, authenticationUID string) error
}
