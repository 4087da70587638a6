package store

import (
	"context"
	"time"
)

// Store is the composite interface for all data access.
type Store interface {
	AuditStore
	Ping(ctx context.Context) error
	Close() error
}

// AuditStore manages invocation audit records.
type AuditStore interface {
	InsertInvocation(ctx context.Context, r *Invocation) error
	QueryInvocations(ctx context.Context, f InvocationFilter) ([]Invocation, int, error)
	GetInvocationStats(ctx context.Context, after, before time.Time) (*InvocationStats, error)
}
