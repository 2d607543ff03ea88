// Package authz gates routes on the role carried by the request's bearer token.
package authz

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
)

// Role groups used by the route table.
var (
	Everyone = []auth.Role{auth.RoleAdmin, auth.RoleAccountant, auth.RoleProjectManager}
	Editors  = []auth.Role{auth.RoleAdmin, auth.RoleProjectManager}
	Admins   = []auth.Role{auth.RoleAdmin}
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// claims on the request context.
func Authenticate(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole lets the request through only when its role is one of roles.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.FromContext(r.Context())
			if !ok || !slices.Contains(roles, claims.Role) {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
