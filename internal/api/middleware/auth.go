package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SportsBooking/internal/api/handlers"
)

// UserIDHeader заголовок с ID вошедшего пользователя
const UserIDHeader = "X-User-ID"

const msgUnauthorized = "требуется авторизация: заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth пропускает только запросы с положительным X-User-ID и кладет ID в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
