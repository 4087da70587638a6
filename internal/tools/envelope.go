package tools

// Result is the raw return of a tool handler: either content with an
// HTTP status (the administrative REST family) or bare content (the
// OGC service family). The dispatcher never needs to know which family
// produced it.
type Result struct {
	content   any
	status    int
	hasStatus bool
}

// WithStatus wraps content paired with a backend status code.
func WithStatus(content any, status int) Result {
	return Result{content: content, status: status, hasStatus: true}
}

// Bare wraps content with no status channel.
func Bare(content any) Result {
	return Result{content: content}
}

// StatusCode returns the backend status and whether one is present.
func (r Result) StatusCode() (int, bool) {
	return r.status, r.hasStatus
}

// Normalize converts a raw result into the uniform envelope payload.
// The field name reflects the semantic kind of the payload ("workspace",
// "message", "rules", ...) so the caller can infer the result shape from
// the key alone. An empty field name means the content is itself the
// payload object (used by the connection diagnostic tool).
func Normalize(r Result, field string) map[string]any {
	if field == "" {
		if m, ok := r.content.(map[string]any); ok {
			return m
		}
		return map[string]any{"result": r.content}
	}

	payload := map[string]any{field: r.content}
	if r.hasStatus {
		payload["status_code"] = r.status
	}
	return payload
}
