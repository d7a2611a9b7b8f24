package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/domain/repository"
)

type AuditStorage struct {
	db *sql.DB
}

func NewAuditStorage(db *sql.DB) repository.AuditRepository {
	return &AuditStorage{db: db}
}

func (s *AuditStorage) Append(ctx context.Context, event entity.AuditEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("encode audit metadata: %w", err)
	}

	_, err = querier(ctx, s.db).ExecContext(ctx, `
		INSERT INTO audit_logs (id, tenant_id, actor_id, action, target_ids, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.ID, event.TenantID, event.ActorID, string(event.Action),
		pq.Array(event.TargetIDs), string(metadata), event.CreatedAt)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}
