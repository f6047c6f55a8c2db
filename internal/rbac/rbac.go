// Package rbac maps roles to permissions and gates HTTP routes on
// them. The role itself is attached to the request context by the
// auth middleware.
package rbac

import (
	"context"
	"net/http"
	"strings"
)

// Default policy. Learners take quizzes and review decks; authors
// also manage cards, decks, templates and media.
var RolePermissions = map[string][]string{
	"learner": {
		"card:view",
		"deck:view",
		"quiz:view",
		"decode",
		"review:create",
		"user:change_password",
	},
	"author": {
		"card:*",
		"deck:*",
		"quiz:*",
		"decode",
		"review:*",
		"asset:upload",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*",
	},
}

func Has(role, perm string) bool {
	for _, p := range RolePermissions[role] {
		if matchPerm(p, perm) {
			return true
		}
	}
	return false
}

func matchPerm(pattern, perm string) bool {
	if pattern == "*" || pattern == perm {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(perm, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

// Require enforces a single permission.
func Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" || !Has(role, perm) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny enforces that the role has at least one of the
// permissions.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			for _, p := range perms {
				if role != "" && Has(role, p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// ---- role in context ----

type ctxKey struct{}

var ctxKeyRole ctxKey

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

func RoleFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyRole); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
