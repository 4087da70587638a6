package audit

import (
	"context"
	"fmt"

	"github.com/geoservercloud/geoserver-mcp/internal/store"
)

// Logger writes invocation records with parameter redaction.
type Logger struct {
	store store.AuditStore
}

// NewLogger creates an audit Logger.
func NewLogger(auditStore store.AuditStore) *Logger {
	return &Logger{store: auditStore}
}

// Record redacts sensitive parameters and inserts the invocation record.
func (l *Logger) Record(ctx context.Context, rec *store.Invocation) error {
	if len(rec.ParamsRedacted) > 0 {
		rec.ParamsRedacted = Redact(rec.ParamsRedacted)
	}

	if err := l.store.InsertInvocation(ctx, rec); err != nil {
		return fmt.Errorf("insert invocation record: %w", err)
	}
	return nil
}
