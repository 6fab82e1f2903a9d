package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

type callerKey struct{}

// Auth проверяет Bearer-токен, разрешает профиль вызывающего через
// identity-usecase и кладет его в контекст запроса. Дальше по цепочке
// профиль передается явно - никакого глобального текущего пользователя.
func Auth(profiles *usecase.ProfileUseCase, verify func(token string) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
				return
			}

			empID, err := verify(strings.TrimPrefix(authHeader, prefix))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
				return
			}

			caller, err := profiles.ResolveCaller(r.Context(), empID)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "caller profile not found")
				return
			}

			ctx := context.WithValue(r.Context(), callerKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext извлекает профиль вызывающего из контекста
func CallerFromContext(ctx context.Context) (*entity.UserProfile, bool) {
	caller, ok := ctx.Value(callerKey{}).(*entity.UserProfile)
	return caller, ok
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}

	json.NewEncoder(w).Encode(response)
}
