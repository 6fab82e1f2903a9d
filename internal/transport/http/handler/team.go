package handler

import (
	"net/http"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// TeamHandler обрабатывает запросы для команд
type TeamHandler struct {
	teamUseCase *usecase.TeamUseCase
}

// NewTeamHandler создает новый handler для команд
func NewTeamHandler(teamUseCase *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{
		teamUseCase: teamUseCase,
	}
}

// GetTeam обрабатывает GET /team/get
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "team_name query parameter is required")
		return
	}

	team, err := h.teamUseCase.GetTeamWithMembers(r.Context(), caller, teamName)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTeamDTO(team))
}

// GetCatalog обрабатывает GET /catalog
func (h *TeamHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	teamName := r.URL.Query().Get("team_name")
	kind := r.URL.Query().Get("kind")

	if teamName == "" || kind == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "team_name and kind query parameters are required")
		return
	}

	values, err := h.teamUseCase.ListCatalogValues(r.Context(), caller, teamName, entity.CatalogKind(kind))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.CatalogResponse{
		TeamName: teamName,
		Kind:     kind,
		Values:   values,
	}

	respondJSON(w, http.StatusOK, response)
}
