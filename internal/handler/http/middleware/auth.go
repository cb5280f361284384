package middleware

import (
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/auth"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose context carries no verified access
// token. Refresh tokens are only good for /auth/refresh and never pass here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.Unauthorized(w, "Access token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
