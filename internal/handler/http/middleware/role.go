package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
)

// RequireRole allows the request through only when the token role is one of roles
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			role := user.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, user.ErrInsufficientPermissions)
		})
	}
}

// RequireEmployeeManager requires the admin or hrd role
func RequireEmployeeManager(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin, user.RoleHRD)(next)
}
