// Package middleware holds the HTTP middleware chain: request identity,
// request time, client metadata, and bearer-token authentication.
//
// Token issuance and validation policy belong to the external identity
// subsystem; RequireAuth only unpacks an already-issued token into a
// principal id for downstream services.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"larder/pkg/requestcontext"

	id "larder/pkg/domain"
)

// PrincipalResolver turns a bearer token into a principal id.
type PrincipalResolver interface {
	ResolvePrincipal(token string) (id.PrincipalID, error)
}

// RequireAuth rejects requests without a resolvable bearer principal and
// injects the principal id into the request context.
func RequireAuth(resolver PrincipalResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx))
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			principalID, err := resolver.ResolvePrincipal(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx))
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithPrincipalID(ctx, principalID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
