package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tendant/role-admin/pkg/config"
)

// AdminRoleMiddleware denies access unless the verified token carries one
// of the configured admin roles in its "roles" claim.
func AdminRoleMiddleware(adminRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				slog.Error("Failed to get token claims from context", "err", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userRoles := rolesFromClaims(claims)
			if !config.HasAnyAdminRole(userRoles, adminRoles) {
				slog.Warn("Denied access to role administration",
					"sub", claims["sub"],
					"roles", userRoles)
				http.Error(w, "Forbidden: Admin role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rolesFromClaims extracts the "roles" claim as a string slice
func rolesFromClaims(claims map[string]interface{}) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
