package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/domain/repository"
	"github.com/mark47B/iam-service/internal/domain/usecase"
	"github.com/mark47B/iam-service/internal/i18n"
)

// StatusChanger включает и выключает пользователей: сначала в базе в одной
// транзакции, затем, после коммита, у внешнего провайдера аутентификации.
// Состояние запроса живёт в statusChange, поэтому один экземпляр можно
// использовать из нескольких горутин.
type StatusChanger struct {
	users     repository.UserRepository
	audit     repository.AuditRepository
	txManager repository.TxManager
	identity  repository.IdentityProvider
	messages  i18n.Localizer
	log       *slog.Logger
}

func NewStatusChanger(
	users repository.UserRepository,
	audit repository.AuditRepository,
	txManager repository.TxManager,
	identity repository.IdentityProvider,
	messages i18n.Localizer,
	log *slog.Logger,
) *StatusChanger {
	return &StatusChanger{
		users:     users,
		audit:     audit,
		txManager: txManager,
		identity:  identity,
		messages:  messages,
		log:       log,
	}
}

type statusChange struct {
	actor    entity.ActingUser
	language string
	ids      []string
	disabled bool

	// загруженные в транзакции пользователи, статус которых реально меняется
	users []entity.User
}

func (s *StatusChanger) ChangeStatus(ctx context.Context, actor entity.ActingUser, language string, req entity.StatusChangeRequest) error {
	sc := &statusChange{
		actor:    actor,
		language: language,
		ids:      req.NormalizedIDs(),
		disabled: req.Disabled,
	}

	// === 1. Проверки до открытия транзакции ===
	if err := s.validate(sc); err != nil {
		return err
	}

	// === 2. База ===
	if err := s.changeAtDatabase(ctx, sc); err != nil {
		return err
	}

	// === 3. Внешний провайдер, уже вне транзакции ===
	return s.changeAtIdentityProvider(ctx, sc)
}

func (s *StatusChanger) validate(sc *statusChange) error {
	if sc.actor.ID == "" {
		return fmt.Errorf("%w: acting user id is required", usecase.ErrInvariant)
	}
	if sc.actor.Email == "" {
		return fmt.Errorf("%w: acting user email is required", usecase.ErrInvariant)
	}
	if sc.actor.TenantID == "" {
		return fmt.Errorf("%w: acting user tenant is required", usecase.ErrInvariant)
	}
	if len(sc.ids) == 0 {
		return fmt.Errorf("%w: ids are required", usecase.ErrInvariant)
	}

	if sc.disabled && slices.Contains(sc.ids, sc.actor.ID) {
		return &usecase.ValidationError{
			Rule:     usecase.RuleDisablingHimself,
			Language: sc.language,
			IDs:      []string{sc.actor.ID},
			Message:  s.messages.Message(sc.language, string(usecase.RuleDisablingHimself)),
		}
	}
	return nil
}

func (s *StatusChanger) changeAtDatabase(ctx context.Context, sc *statusChange) (err error) {
	txCtx, tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Warn("status change rollback failed",
				slog.String("actor_id", sc.actor.ID),
				slog.Any("error", rbErr),
			)
		}
	}()

	// Грузим только тех, кого действительно нужно переключить
	sc.users, err = s.users.FindAllByDisabled(txCtx, sc.actor.TenantID, sc.ids, !sc.disabled)
	if err != nil {
		return err
	}

	changed := make([]string, 0, len(sc.users))
	for _, u := range sc.users {
		if err = s.users.UpdateStatus(txCtx, u.ID, sc.disabled, sc.actor); err != nil {
			return err
		}
		changed = append(changed, u.ID)
	}

	if len(changed) > 0 {
		err = s.audit.Append(txCtx, entity.AuditEvent{
			ID:        uuid.New(),
			TenantID:  sc.actor.TenantID,
			ActorID:   sc.actor.ID,
			Action:    entity.StatusAuditAction(sc.disabled),
			TargetIDs: changed,
			Metadata: map[string]any{
				"requested_ids": sc.ids,
				"actor_email":   sc.actor.Email,
			},
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *StatusChanger) changeAtIdentityProvider(ctx context.Context, sc *statusChange) error {
	op := usecase.SyncDisable
	if !sc.disabled {
		op = usecase.SyncEnable
	}

	for i, u := range sc.users {
		if u.AuthenticationUID == "" {
			continue
		}

		var err error
		if sc.disabled {
			err = s.identity.Disable(ctx, u.AuthenticationUID)
		} else {
			err = s.identity.Enable(ctx, u.AuthenticationUID)
		}
		if err == nil {
			continue
		}

		syncErr := &usecase.SyncError{
			UserID:            u.ID,
			AuthenticationUID: u.AuthenticationUID,
			Operation:         op,
			Pending:           pendingSync(sc.users[i:]),
			Err:               err,
		}
		s.log.Error("identity provider out of sync with database",
			slog.String("user_id", u.ID),
			slog.String("authentication_uid", u.AuthenticationUID),
			slog.String("operation", string(op)),
			slog.Any("pending", syncErr.Pending),
			slog.Any("error", err),
		)
		return syncErr
	}
	return nil
}

func pendingSync(users []entity.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if u.AuthenticationUID != "" {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
