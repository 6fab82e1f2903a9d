package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/dto"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// TaskHandler обрабатывает запросы записей задач
type TaskHandler struct {
	taskUseCase *usecase.TaskUseCase
}

// NewTaskHandler создает новый handler записей задач
func NewTaskHandler(taskUseCase *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
	}
}

// List обрабатывает GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	teamName := r.URL.Query().Get("team_name")
	date := r.URL.Query().Get("date")
	empID := r.URL.Query().Get("emp_id")

	if teamName == "" || date == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "team_name and date query parameters are required")
		return
	}

	tasks, err := h.taskUseCase.ListTasks(r.Context(), caller, teamName, date, empID)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TaskListResponse{Tasks: dto.ToTaskEntryDTOs(tasks)})
}

// Create обрабатывает POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.TaskWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	result, err := h.taskUseCase.CreateTask(r.Context(), caller, dto.ToTaskInput(&req))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.TaskWriteResponse{
		Task:       dto.ToTaskEntryDTO(result.Task),
		Validation: dto.ToValidationDTO(result.Validation),
	}

	respondJSON(w, http.StatusCreated, response)
}

// Update обрабатывает PUT /tasks/{taskID}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "taskID path parameter is required")
		return
	}

	var req dto.TaskWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	result, err := h.taskUseCase.UpdateTask(r.Context(), caller, taskID, dto.ToTaskInput(&req))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.TaskWriteResponse{
		Task:       dto.ToTaskEntryDTO(result.Task),
		Validation: dto.ToValidationDTO(result.Validation),
	}

	respondJSON(w, http.StatusOK, response)
}

// Delete обрабатывает DELETE /tasks/{taskID}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, "taskID")
	teamName := r.URL.Query().Get("team_name")
	date := r.URL.Query().Get("date")
	empID := r.URL.Query().Get("emp_id")

	if taskID == "" || teamName == "" || date == "" || empID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "taskID, team_name, date and emp_id are required")
		return
	}

	if err := h.taskUseCase.DeleteTask(r.Context(), caller, teamName, date, empID, taskID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
