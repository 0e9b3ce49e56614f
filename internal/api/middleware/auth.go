package middleware

import (
	"net/http"
	"strings"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	"github.com/gourmethaven/reservation-service/internal/auth"
)

const msgUnauthorized = "missing or invalid session token"

// Auth проверяет сессионный токен администратора в заголовке Authorization.
// Защищенные маршруты доступны только с валидным Bearer токеном.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if _, err := auth.VerifyToken(jwtSecret, token); err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
