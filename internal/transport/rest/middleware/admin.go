// Package middleware holds the request middlewares for the REST transport.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// AdminMiddleware gates the admin endpoints with a single email equality
// check. There is no token scheme; the caller identifies itself with the
// X-User-Email header (or an email query parameter) and access is granted
// only when it equals the configured admin address.
type AdminMiddleware struct {
	adminEmail string
}

// NewAdminMiddleware creates an admin middleware for the configured address.
func NewAdminMiddleware(adminEmail string) *AdminMiddleware {
	return &AdminMiddleware{adminEmail: adminEmail}
}

// RequireAdmin rejects requests whose caller email does not match the
// configured admin email. An unconfigured admin email locks the endpoints.
func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := CallerEmail(r)
		if m.adminEmail == "" || !strings.EqualFold(email, m.adminEmail) {
			http.Error(w, `{"error":"admin access required"}`, http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), userEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerEmail extracts the caller's self-reported email from the request.
func CallerEmail(r *http.Request) string {
	if email := r.Header.Get("X-User-Email"); email != "" {
		return strings.TrimSpace(email)
	}
	return strings.TrimSpace(r.URL.Query().Get("email"))
}

// GetUserEmail extracts the validated email from context.
func GetUserEmail(ctx context.Context) string {
	if v := ctx.Value(userEmailKey); v != nil {
		return v.(string)
	}
	return ""
}
