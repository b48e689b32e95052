package session

import "context"

type contextKey string

const idKey contextKey = "session_id"

// WithID stores the session id in ctx
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

// IDFromContext returns the session id stored by WithID, or ""
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(idKey).(string)
	return id
}
