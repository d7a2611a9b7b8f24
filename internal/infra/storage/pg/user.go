package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/domain/repository"
	"github.com/mark47B/iam-service/internal/domain/usecase"
)

type UserStorage struct {
	db *sql.DB
}

func NewUserStorage(db *sql.DB) repository.UserRepository {
	return &UserStorage{db: db}
}

const userColumns = `id, tenant_id, email, full_name, disabled, authentication_uid, created_at, updated_at, updated_by_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (entity.User, error) {
	var (
		u                 entity.User
		fullName          sql.NullString
		authenticationUID sql.NullString
		updatedByID       sql.NullString
		createdAt         sql.NullTime
		updatedAt         sql.NullTime
	)
	err := row.Scan(&u.ID, &u.TenantID, &u.Email, &fullName, &u.Disabled,
		&authenticationUID, &createdAt, &updatedAt, &updatedByID)
	if err != nil {
		return entity.User{}, err
	}

	u.FullName = fullName.String
	u.AuthenticationUID = authenticationUID.String
	u.UpdatedByID = updatedByID.String
	if createdAt.Valid {
		u.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}

func (s *UserStorage) queryUsers(ctx context.Context, query string, args ...any) ([]entity.User, error) {
	rows, err := querier(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer CloseRows(rows)

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserStorage) FindAllByDisabled(ctx context.Context, tenantID string, ids []string, currentDisabled bool) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := s.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE tenant_id = $1
		  AND id = ANY($2)
		  AND disabled = $3
		ORDER BY id
		FOR UPDATE
	`, tenantID, pq.Array(ids), currentDisabled)
	if err != nil {
		return nil, fmt.Errorf("find users by disabled: %w", err)
	}
	return users, nil
}

func (s *UserStorage) UpdateStatus(ctx context.Context, id string, disabled bool, actor entity.ActingUser) error {
	res, err := querier(ctx, s.db).ExecContext(ctx, `
		UPDATE users
		SET disabled = $1,
		    updated_at = now(),
		    updated_by_id = $2
		WHERE id = $3
		  AND tenant_id = $4
	`, disabled, actor.ID, id, actor.TenantID)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if n == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func (s *UserStorage) Get(ctx context.Context, tenantID, id string) (entity.User, error) {
	row := querier(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStorage) List(ctx context.Context, tenantID string, filter entity.UserFilter) ([]entity.User, error) {
	var (
		users []entity.User
		err   error
	)
	if filter.Disabled != nil {
		users, err = s.queryUsers(ctx, `
			SELECT `+userColumns+`
			FROM users
			WHERE tenant_id = $1 AND disabled = $2
			ORDER BY id
		`, tenantID, *filter.Disabled)
	} else {
		users, err = s.queryUsers(ctx, `
			SELECT `+userColumns+`
			FROM users
			WHERE tenant_id = $1
			ORDER BY id
		`, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
