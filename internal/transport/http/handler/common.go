package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/middleware"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Логируем ошибку, но не можем изменить статус код
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
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

// handleUseCaseError обрабатывает ошибки из usecase слоя
func handleUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		// Определяем HTTP статус код по коду ошибки
		status := getStatusCodeByErrorCode(domainErr.Code)
		respondError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	// Неизвестная ошибка
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// getStatusCodeByErrorCode возвращает HTTP статус код по коду доменной ошибки
func getStatusCodeByErrorCode(code string) int {
	switch code {
	case "INVALID_FORMAT", "BELOW_MINIMUM", "EXCEEDS_MAXIMUM",
		"INSUFFICIENT_DAILY_BASELINE", "DAILY_LIMIT_EXCEEDED", "INVALID_INPUT", "EMPLOYEE_EXISTS":
		return http.StatusBadRequest
	case "ACCESS_DENIED", "ADMIN_READ_ONLY":
		return http.StatusForbidden
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "NOT_FOUND":
		return http.StatusNotFound
	case "COLLABORATOR_UNAVAILABLE":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// callerFromRequest достает профиль вызывающего, положенный auth middleware
func callerFromRequest(w http.ResponseWriter, r *http.Request) (*entity.UserProfile, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller profile")
		return nil, false
	}
	return caller, true
}
