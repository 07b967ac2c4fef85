// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization,
// разрешает его в пользователя через сервис аутентификации и в случае успеха
// добавляет пользователя в контекст для дальнейшего использования в обработчиках.
//
// Любая ошибка проверки возвращает HTTP 401 Unauthorized с заголовком-вызовом
// WWW-Authenticate, без уточнения причины отказа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
	"github.com/magabrotheeeer/item-registry/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для разрешённого пользователя в контексте
const User Key = "user"

// Service описывает интерфейс сервиса для разрешения JWT токена в пользователя.
type Service interface {
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext возвращает пользователя, добавленного JWTMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден и пользователь существует, добавляет пользователя в контекст
// запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				unauthenticated(w, r)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.ResolveToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				unauthenticated(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthenticated отвечает единообразно на все причины отказа:
// отсутствие заголовка, битый токен, истекший токен, удалённый пользователь.
func unauthenticated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	render.JSON(w, r, response.Error("not authenticated"))
}
