package repository

import "context"

type Tx interface {
	Commit() error
	Rollback() error
}

type TxManager interface {
	// Begin возвращает контекст, через который репозитории видят транзакцию
	Begin(ctx context.Context) (context.Context, Tx, error)
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
