package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/domain/repository"
	"github.com/mark47B/iam-service/internal/domain/usecase"
)

// compile-time proof
var _ usecase.Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	users         repository.UserRepository
	statusChanger *StatusChanger
}

func NewService(users repository.UserRepository, statusChanger *StatusChanger) usecase.Service {
	return &ServiceImpl{
		users:         users,
		statusChanger: statusChanger,
	}
}

func (s *ServiceImpl) ChangeStatus(ctx context.Context, actor entity.ActingUser, language string, req entity.StatusChangeRequest) error {
	return s.statusChanger.ChangeStatus(ctx, actor, language, req)
}

func (s *ServiceImpl) ListUsers(ctx context.Context, actor entity.ActingUser, filter entity.UserFilter) ([]entity.User, error) {
	if actor.TenantID == "" {
		return nil, fmt.Errorf("%w: acting user tenant is required", usecase.ErrInvariant)
	}

	users, err := s.users.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *ServiceImpl) FindUser(ctx context.Context, actor entity.ActingUser, id string) (entity.User, error) {
	if actor.TenantID == "" {
		return entity.User{}, fmt.Errorf("%w: acting user tenant is required", usecase.ErrInvariant)
	}

	user, err := s.users.Get(ctx, actor.TenantID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}
