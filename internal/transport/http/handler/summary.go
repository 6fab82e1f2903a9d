package handler

import (
	"net/http"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// SummaryHandler обрабатывает запросы дневных сводок
type SummaryHandler struct {
	summaryUseCase *usecase.SummaryUseCase
}

// NewSummaryHandler создает новый handler сводок
func NewSummaryHandler(summaryUseCase *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{
		summaryUseCase: summaryUseCase,
	}
}

// GetDailySummary обрабатывает GET /summary
func (h *SummaryHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	teamName := r.URL.Query().Get("team_name")
	date := r.URL.Query().Get("date")

	if teamName == "" || date == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "team_name and date query parameters are required")
		return
	}

	summary, err := h.summaryUseCase.GetDailySummary(r.Context(), caller, teamName, date)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToDailySummaryResponse(summary))
}
