package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/geoservercloud/geoserver-mcp/internal/store"
	"github.com/google/uuid"
)

func (d *DB) InsertInvocation(ctx context.Context, r *store.Invocation) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	params := normalizeJSON(r.ParamsRedacted, "{}")

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO invocations
			(id, timestamp, tool, params_redacted, status, error_kind,
			 error_message, status_code, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, formatTime(r.Timestamp), r.Tool, params, r.Status,
		r.ErrorKind, r.ErrorMessage, r.StatusCode, r.LatencyMs,
		formatTime(r.CreatedAt),
	)
	return err
}

func (d *DB) QueryInvocations(
	ctx context.Context, f store.InvocationFilter,
) ([]store.Invocation, int, error) {
	where, args := buildInvocationWhere(f)

	var total int
	countQ := "SELECT COUNT(*) FROM invocations" + where
	if err := d.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := `SELECT id, timestamp, tool, params_redacted, status, error_kind,
			error_message, status_code, latency_ms, created_at
		FROM invocations` + where + `
		ORDER BY timestamp DESC LIMIT ? OFFSET ?`
	rows, err := d.db.QueryContext(ctx, q, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []store.Invocation
	for rows.Next() {
		var r store.Invocation
		var ts, created, params string
		if err := rows.Scan(
			&r.ID, &ts, &r.Tool, &params, &r.Status, &r.ErrorKind,
			&r.ErrorMessage, &r.StatusCode, &r.LatencyMs, &created,
		); err != nil {
			return nil, 0, err
		}
		r.Timestamp = parseTime(ts)
		r.CreatedAt = parseTime(created)
		r.ParamsRedacted = json.RawMessage(params)
		out = append(out, r)
	}
	return out, total, rows.Err()
}

func (d *DB) GetInvocationStats(
	ctx context.Context, after, before time.Time,
) (*store.InvocationStats, error) {
	q := `SELECT COUNT(*),
	       COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
	       COALESCE(AVG(latency_ms), 0)
	FROM invocations`
	var conds []string
	var args []any
	if !after.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, formatTime(after))
	}
	if !before.IsZero() {
		conds = append(conds, "timestamp < ?")
		args = append(args, formatTime(before))
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}

	var s store.InvocationStats
	err := d.db.QueryRowContext(ctx, q, args...).
		Scan(&s.Total, &s.Errors, &s.AvgLatencyMs)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func buildInvocationWhere(f store.InvocationFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Tool != nil {
		conds = append(conds, "tool = ?")
		args = append(args, *f.Tool)
	}
	if f.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, *f.Status)
	}
	if f.After != nil {
		conds = append(conds, "timestamp >= ?")
		args = append(args, formatTime(*f.After))
	}
	if f.Before != nil {
		conds = append(conds, "timestamp < ?")
		args = append(args, formatTime(*f.Before))
	}

	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
