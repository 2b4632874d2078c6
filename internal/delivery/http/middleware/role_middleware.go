package middleware

import (
	"net/http"

	"repairshop-backend/pkg/response"
)

// RequireAdmin guards staff-only endpoints. The flag comes from the JWT
// claims set by AuthMiddleware, which reflect the persisted is_admin column
// at token issue time.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetIsAdminFromContext(r.Context()) {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
