package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvariant — нарушен контракт вызова (ошибка интеграции, а не пользователя)
	ErrInvariant    = errors.New("invariant violation")
	ErrUserNotFound = errors.New("user not found")
)

// Rule — ключ бизнес-правила, он же ключ локализованного сообщения
type Rule string

const (
	RuleDisablingHimself Rule = "iam.errors.disablingHimself"
)

// ValidationError — нарушение бизнес-правила, всегда до каких-либо изменений
type ValidationError struct {
	Rule     Rule
	Language string
	IDs      []string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Rule == e.Rule
}

type SyncOperation string

const (
	SyncEnable  SyncOperation = "enable"
	SyncDisable SyncOperation = "disable"
)

// SyncError — база уже закоммичена, а внешний провайдер остался в старом состоянии
type SyncError struct {
	UserID            string
	AuthenticationUID string
	Operation         SyncOperation
	// Пользователи, которые остались не синхронизированы (включая UserID)
	Pending []string
	Err     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("identity provider %s for user %s (uid %s), pending [%s]: %v",
		e.Operation, e.UserID, e.AuthenticationUID, strings.Join(e.Pending, ","), e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
