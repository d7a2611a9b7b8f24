package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark47B/iam-service/internal/domain/repository"
)

type TxManager struct {
	db  *sql.DB
	log *slog.Logger
}

func NewTxManager(db *sql.DB, log *slog.Logger) repository.TxManager {
	return &TxManager{db: db, log: log}
}

func (m *TxManager) Begin(ctx context.Context) (context.Context, repository.Tx, error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return ctx, nil, fmt.Errorf("begin tx: %w", err)
	}
	return withTx(ctx, tx), &sqlTx{tx: tx}, nil
}

func (m *TxManager) Do(ctx context.Context, fn func(context.Context) error) (err error) {
	txCtx, tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			m.log.Warn("tx rollback failed", slog.Any("error", rbErr))
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}

	return tx.Commit()
}

type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Rollback после неудачного Commit — не ошибка
func (t *sqlTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback tx: %w", err)
	}
	return nil
}

// txKey — приватный ключ для хранения *sql.Tx в контексте
type txKey struct{}

// withTx — добавляет транзакцию в контекст
func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// Querier — общий интерфейс для *sql.DB и *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func querier(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}
