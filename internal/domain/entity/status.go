package entity

import (
	"time"

	"github.com/google/uuid"
)

type StatusChangeRequest struct {
	IDs      []string
	Disabled bool
}

// NormalizedIDs убирает дубликаты и пустые id, сохраняя порядок первого вхождения
func (r StatusChangeRequest) NormalizedIDs() []string {
	seen := make(map[string]struct{}, len(r.IDs))
	ids := make([]string, 0, len(r.IDs))
	for _, id := range r.IDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

type AuditAction string

const (
	AuditUsersDisabled AuditAction = "USERS_DISABLED"
	AuditUsersEnabled  AuditAction = "USERS_ENABLED"
)

func StatusAuditAction(disabled bool) AuditAction {
	if disabled {
		return AuditUsersDisabled
	}
	return AuditUsersEnabled
}

// AuditEvent — неизменяемая запись о том, кто и что поменял
type AuditEvent struct {
	ID        uuid.UUID
	TenantID  string
	ActorID   string
	Action    AuditAction
	TargetIDs []string
	Metadata  map[string]any
	CreatedAt time.Time
}
