package usecase

import (
	"context"

	"github.com/mark47B/iam-service/internal/domain/entity"
)

// Смена статуса пользователей
type StatusUseCase interface {
	// Массовое включение/выключение пользователей с синхронизацией во внешний провайдер
	ChangeStatus(ctx context.Context, actor entity.ActingUser, language string, req entity.StatusChangeRequest) error
}

// Чтение пользователей тенанта
type UserUseCase interface {
	ListUsers(ctx context.Context, actor entity.ActingUser, filter entity.UserFilter) ([]entity.User, error)
	FindUser(ctx context.Context, actor entity.ActingUser, id string) (entity.User, error)
}

// Фасад для агрегации интерфейсов сервиса
type Service interface {
	StatusUseCase
	UserUseCase
}
