// internal/middleware/tenant.go
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/service"
)

// Tenant resolves the session's organization on every request and stores
// its id in the context. It never trusts a tenant id sent by the client.
func Tenant(resolver *service.OrganizationResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sess, ok := auth.SessionFrom(ctx)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			orgID, err := resolver.Resolve(ctx, sess.UserID, sess.OrgRef)
			if err != nil {
				if errors.Is(err, domain.ErrOrganizationNotFound) {
					respondWithError(w, http.StatusNotFound, "Organization not found")
					return
				}
				slog.ErrorContext(ctx, "resolving organization", "error", err, "requestID", chimw.GetReqID(ctx))
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithOrganizationID(ctx, orgID)))
		})
	}
}
