package middleware

import (
	"net/http"
	"strings"

	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/token"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth middleware verifies the bearer token and attaches the caller's email
// to the request context. A missing credential is 401; a present but
// invalid or expired one is 403. Callers depend on this exact mapping.
func Auth(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Unauthorized access")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseForbidden(w, "Forbidden access")
				return
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Rejected invalid token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Forbidden access")
				return
			}

			ctx := utils.SetEmailContext(r.Context(), email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - second gate layered after Auth on admin-only routes
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get caller email from context (set by Auth)
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Cross-check the role in the identity directory
			user, err := userRepo.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("email", email))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check if admin
			if !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("email", email),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
