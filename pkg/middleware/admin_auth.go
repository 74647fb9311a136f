package middleware

import (
	"errors"
	"net/http"

	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/logger"
	"fairgrounds-admin/pkg/response"

	"go.uber.org/zap"
)

// RequireSuperAdmin checks the caller's admin record before letting the
// request through. The record must exist and carry the super admin role;
// a missing record or any other role is an authorization failure, while a
// lookup fault is surfaced as a server failure rather than a denial.
func RequireSuperAdmin(admins repository.AdminRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok || userID == "" {
				response.SendUnauthorized(w, "Missing caller identity")
				return
			}

			profile, err := admins.FindByUserID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					response.SendForbidden(w, "Super admin access required")
					return
				}
				logger.Error("admin lookup failed",
					zap.String("user_id", userID),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err))
				response.SendInternalError(w, "Internal server error")
				return
			}

			if !profile.IsSuperAdmin() {
				response.SendForbidden(w, "Super admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
