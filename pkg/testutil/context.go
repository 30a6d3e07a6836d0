package testutil

import (
	"net/http"
	"time"

	"tastebook/pkg/requestcontext"
)

// WithEditorID adds an editor ID to the request context, simulating what the
// editor auth middleware does for authenticated admin requests.
func WithEditorID(req *http.Request, editorID string) *http.Request {
	return req.WithContext(requestcontext.WithEditorID(req.Context(), editorID))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithFrozenTime pins the request clock so timestamp-writing code paths are
// deterministic under test.
func WithFrozenTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
