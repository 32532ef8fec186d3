package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/auth"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token carrying a user id.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if _, ok := jwt.UserIDFromClaims(claims); !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
