package handler

import (
	"encoding/json"
	"net/http"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// AuthHandler обрабатывает регистрацию, логин и профиль вызывающего
type AuthHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

// NewAuthHandler создает новый handler аутентификации
func NewAuthHandler(profileUseCase *usecase.ProfileUseCase) *AuthHandler {
	return &AuthHandler{
		profileUseCase: profileUseCase,
	}
}

// Register обрабатывает POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	result, err := h.profileUseCase.Register(r.Context(), &usecase.RegisterInput{
		EmpID:        req.EmpID,
		EmpName:      req.EmpName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		TeamName:     req.TeamName,
		ManagedTeams: req.ManagedTeams,
		ReportsTo:    req.ReportsTo,
	})
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.AuthResponse{
		Profile: dto.ToProfileDTO(result.Profile),
		Token:   result.Token,
	}

	respondJSON(w, http.StatusCreated, response)
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	result, err := h.profileUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.AuthResponse{
		Profile: dto.ToProfileDTO(result.Profile),
		Token:   result.Token,
	}

	respondJSON(w, http.StatusOK, response)
}

// Me обрабатывает GET /profile/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, dto.ToProfileDTO(caller))
}
