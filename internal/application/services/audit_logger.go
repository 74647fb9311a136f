package services

import (
	"context"
	"sync"
	"time"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditRecorder records administrative actions without blocking the caller.
type AuditRecorder interface {
	Record(action, actorID string, metadata map[string]interface{})
}

// AuditLogger writes audit entries through a buffered queue drained by a
// background worker. Writes are best-effort: a failed insert is logged and
// dropped, and a full queue drops the entry rather than block a request.
type AuditLogger struct {
	repo    repository.AuditRepository
	entries chan model.AuditLogEntry
	wg      sync.WaitGroup
	once    sync.Once
	timeout time.Duration
}

// NewAuditLogger creates an audit logger and starts its worker.
func NewAuditLogger(repo repository.AuditRepository) *AuditLogger {
	l := &AuditLogger{
		repo:    repo,
		entries: make(chan model.AuditLogEntry, 100),
		timeout: 10 * time.Second,
	}

	l.wg.Add(1)
	go l.run()

	return l
}

// Record enqueues one audit entry with a server-assigned id and timestamp.
func (l *AuditLogger) Record(action, actorID string, metadata map[string]interface{}) {
	entry := model.AuditLogEntry{
		ID:        uuid.New().String(),
		Action:    action,
		ActorID:   actorID,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	select {
	case l.entries <- entry:
	default:
		logger.Warn("audit queue full, dropping entry",
			zap.String("action", action),
			zap.String("actor_id", actorID))
	}
}

// Stop drains the queue and stops the worker.
func (l *AuditLogger) Stop() {
	l.once.Do(func() {
		close(l.entries)
	})
	l.wg.Wait()
}

func (l *AuditLogger) run() {
	defer l.wg.Done()

	for entry := range l.entries {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		if err := l.repo.Insert(ctx, &entry); err != nil {
			logger.Error("audit write failed",
				zap.String("action", entry.Action),
				zap.String("actor_id", entry.ActorID),
				zap.Error(err))
		}
		cancel()
	}
}
