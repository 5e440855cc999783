package testutil

import (
	"context"
	"net/http"

	id "larder/pkg/domain"
	"larder/pkg/requestcontext"
)

// WithPrincipal adds a principal ID to the request context, simulating what
// the auth middleware does for authenticated requests. Invalid IDs are
// silently ignored.
func WithPrincipal(req *http.Request, principalID string) *http.Request {
	if parsed, err := id.ParsePrincipalID(principalID); err == nil {
		return req.WithContext(requestcontext.WithPrincipalID(req.Context(), parsed))
	}
	return req
}

// Ctx returns a context carrying the given principal, for service-level tests
// that bypass the HTTP middleware chain.
func Ctx(principalID id.PrincipalID) context.Context {
	return requestcontext.WithPrincipalID(context.Background(), principalID)
}
