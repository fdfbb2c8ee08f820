// Package middlewarectx содержит HTTP middleware, восстанавливающее личность
// запроса из JWT, и доступ к ней через контекст.
//
// SessionResolver проверяет токен из заголовка Authorization или cookie
// access_token. Невалидный или отсутствующий токен даёт анонимный запрос,
// а не ошибку — решения о доступе принимает гейт.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// identityKey — ключ личности запроса в контексте.
const identityKey Key = "identity"

// AccessTokenCookie — имя cookie с токеном для браузерных страниц.
const AccessTokenCookie = "access_token"

// TokenService описывает интерфейс сервиса для валидации JWT токена.
type TokenService interface {
	ValidateToken(ctx context.Context, token string) (*models.Identity, error)
}

// SessionResolver возвращает HTTP middleware, которое кладет личность
// запроса в контекст. Токен берется из заголовка Authorization (Bearer),
// при его отсутствии — из cookie access_token.
func SessionResolver(authService TokenService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				// Просроченный или битый токен равносилен его отсутствию.
				log.Debug("token rejected", slog.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает личность запроса, если он аутентифицирован.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}

// WithIdentity кладет личность в контекст. Используется в тестах обработчиков.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
