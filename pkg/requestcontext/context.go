// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services read them without importing net/http.
// Tests inject a fixed clock with WithTime so time-sensitive logic stays
// deterministic.
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	editorIDKey    struct{}
)

// WithRequestID attaches a request ID for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID, or "" when unset.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithTime pins the request clock. Middleware sets this at ingress; tests set
// it to a fixed instant.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the request clock, falling back to wall-clock time when unset.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithEditorID records the authenticated editor performing an admin action.
func WithEditorID(ctx context.Context, editorID string) context.Context {
	return context.WithValue(ctx, editorIDKey{}, editorID)
}

// EditorID returns the authenticated editor ID, or "" when unset.
func EditorID(ctx context.Context) string {
	v, _ := ctx.Value(editorIDKey{}).(string)
	return v
}
