package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// AuditRepository appends audit log entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *model.AuditLogEntry) error
}
