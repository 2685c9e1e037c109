package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"momentsCPT/internal/apperrors"
	handlers "momentsCPT/internal/handler"
	"momentsCPT/internal/service"
)

type Middleware func(http.Handler) http.Handler

// publicPaths - эндпоинты, доступные без токена
var publicPaths = []string{
	"/api/auth/register",
	"/api/auth/login",
	"/api/auth/logout",
	"/health",
	"/stats",
	"/",
}

// AuthMiddleware проверяет bearer-токен через AuthService и кладет
// Principal в контекст запроса. Единственный путь проверки токена -
// сервис, поэтому отзыв учитывается всегда.
func AuthMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Пропускаем публичные эндпоинты
			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Извлекаем токен из заголовка
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			// Проверяем формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			principal, err := authService.Authenticate(r.Context(), tokenString)
			if err != nil {
				switch {
				case errors.Is(err, apperrors.ErrTokenExpired):
					handlers.WriteError(w, "Токен истек", http.StatusUnauthorized)
				case errors.Is(err, apperrors.ErrTokenRevoked):
					handlers.WriteError(w, "Токен отозван", http.StatusUnauthorized)
				case errors.Is(err, apperrors.ErrDependency):
					handlers.WriteError(w, "Хранилище токенов недоступно", http.StatusServiceUnavailable)
				default:
					handlers.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				}
				return
			}

			// Токен кладем рядом с принципалом - он нужен для logout
			ctx := context.WithValue(r.Context(), handlers.PrincipalKey, principal)
			ctx = context.WithValue(ctx, handlers.TokenKey, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] %s %s", requestID, r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
