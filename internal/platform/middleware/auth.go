package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tastebook/pkg/requestcontext"
)

// TokenValidator validates an editor bearer token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*EditorClaims, error)
}

// EditorClaims are the claims extracted from a validated editor token.
type EditorClaims struct {
	EditorID string
	Role     string
}

// RequireEditor rejects requests without a valid editor bearer token and puts
// the editor ID on the context for audit logging.
func RequireEditor(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				unauthorized(w)
				return
			}

			ctx := requestcontext.WithEditorID(r.Context(), claims.EditorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"invalid or expired token"}`))
}
