package dto

import (
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/budget"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит детали ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProfileDTO представляет профиль пользователя.
// Имена полей повторяют схему документного хранилища.
type ProfileDTO struct {
	EmpID        string   `json:"empId"`
	EmpName      string   `json:"empName"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	TeamName     string   `json:"teamName,omitempty"`
	ManagedTeams []string `json:"managedTeams,omitempty"`
	ReportsTo    string   `json:"reportsTo,omitempty"`
}

// RegisterRequest запрос на регистрацию профиля
type RegisterRequest struct {
	EmpID        string   `json:"empId"`
	EmpName      string   `json:"empName"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	TeamName     string   `json:"teamName"`
	ManagedTeams []string `json:"managedTeams"`
	ReportsTo    string   `json:"reportsTo"`
}

// LoginRequest запрос на логин
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse ответ регистрации и логина
type AuthResponse struct {
	Profile ProfileDTO `json:"profile"`
	Token   string     `json:"token"`
}

// TaskEntryDTO представляет запись задачи
type TaskEntryDTO struct {
	TaskID               string `json:"taskId"`
	TeamName             string `json:"teamName"`
	Date                 string `json:"date"`
	EmpID                string `json:"empId"`
	EmpName              string `json:"empName"`
	WorkType             string `json:"workType"`
	TimeSpent            string `json:"timeSpent"`
	Status               string `json:"status"`
	PercentageCompletion string `json:"percentageCompletion"`
	Client               string `json:"client,omitempty"`
	Project              string `json:"project,omitempty"`
	Phase                string `json:"phase,omitempty"`
	Description          string `json:"description,omitempty"`
	Remarks              string `json:"remarks,omitempty"`
}

// TaskWriteRequest запрос на создание/редактирование записи задачи
type TaskWriteRequest struct {
	TeamName             string `json:"teamName"`
	Date                 string `json:"date"`
	EmpID                string `json:"empId"`
	EmpName              string `json:"empName"`
	WorkType             string `json:"workType"`
	TimeSpent            string `json:"timeSpent"`
	Status               string `json:"status"`
	PercentageCompletion string `json:"percentageCompletion"`
	Client               string `json:"client"`
	Project              string `json:"project"`
	Phase                string `json:"phase"`
	Description          string `json:"description"`
	Remarks              string `json:"remarks"`
}

// ValidationDTO представляет разбивку часов дня после принятой записи
type ValidationDTO struct {
	NormalHours     string `json:"normalHours"`
	ExtraHours      string `json:"extraHours"`
	TotalDailyHours string `json:"totalDailyHours"`
	Message         string `json:"message"`
}

// TaskWriteResponse ответ на создание/редактирование записи
type TaskWriteResponse struct {
	Task       TaskEntryDTO  `json:"task"`
	Validation ValidationDTO `json:"validation"`
}

// TaskListResponse ответ на список записей
type TaskListResponse struct {
	Tasks []TaskEntryDTO `json:"tasks"`
}

// TeamDTO представляет команду с участниками
type TeamDTO struct {
	TeamName string       `json:"teamName"`
	Members  []ProfileDTO `json:"members"`
}

// CatalogResponse ответ на запрос справочника
type CatalogResponse struct {
	TeamName string   `json:"teamName"`
	Kind     string   `json:"kind"`
	Values   []string `json:"values"`
}

// EmployeeDaySummaryDTO представляет нагрузку сотрудника за день
type EmployeeDaySummaryDTO struct {
	EmpID       string `json:"empId"`
	EmpName     string `json:"empName"`
	TotalHours  string `json:"totalHours"`
	NormalHours string `json:"normalHours"`
	ExtraHours  string `json:"extraHours"`
	EntryCount  int    `json:"entryCount"`
}

// DailySummaryResponse ответ на дневную сводку команды
type DailySummaryResponse struct {
	TeamName  string                  `json:"teamName"`
	Date      string                  `json:"date"`
	Employees []EmployeeDaySummaryDTO `json:"employees"`
}

// Маппинг функции

// ToProfileDTO преобразует entity в DTO
func ToProfileDTO(profile *entity.UserProfile) ProfileDTO {
	return ProfileDTO{
		EmpID:        profile.EmpID,
		EmpName:      profile.EmpName,
		Email:        profile.Email,
		Role:         profile.Role.String(),
		TeamName:     profile.TeamName,
		ManagedTeams: profile.ManagedTeams,
		ReportsTo:    profile.ReportsTo,
	}
}

// ToTaskEntryDTO преобразует entity в DTO
func ToTaskEntryDTO(task *entity.TaskEntry) TaskEntryDTO {
	return TaskEntryDTO{
		TaskID:               task.TaskID,
		TeamName:             task.TeamName,
		Date:                 task.Date,
		EmpID:                task.EmpID,
		EmpName:              task.EmpName,
		WorkType:             task.WorkType,
		TimeSpent:            task.TimeSpent,
		Status:               string(task.Status),
		PercentageCompletion: task.PercentageCompletion,
		Client:               task.Client,
		Project:              task.Project,
		Phase:                task.Phase,
		Description:          task.Description,
		Remarks:              task.Remarks,
	}
}

// ToTaskEntryDTOs преобразует список entities в список DTOs
func ToTaskEntryDTOs(tasks []*entity.TaskEntry) []TaskEntryDTO {
	dtos := make([]TaskEntryDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, ToTaskEntryDTO(task))
	}
	return dtos
}

// ToTaskInput преобразует запрос в usecase input
func ToTaskInput(req *TaskWriteRequest) *usecase.TaskInput {
	return &usecase.TaskInput{
		TeamName:             req.TeamName,
		Date:                 req.Date,
		EmpID:                req.EmpID,
		EmpName:              req.EmpName,
		WorkType:             req.WorkType,
		TimeSpent:            req.TimeSpent,
		Status:               req.Status,
		PercentageCompletion: req.PercentageCompletion,
		Client:               req.Client,
		Project:              req.Project,
		Phase:                req.Phase,
		Description:          req.Description,
		Remarks:              req.Remarks,
	}
}

// ToValidationDTO преобразует результат валидатора: часы отдаются
// строками H:MM, как их показывает форма
func ToValidationDTO(result *budget.ValidationResult) ValidationDTO {
	return ValidationDTO{
		NormalHours:     budget.FormatHours(result.NormalHours),
		ExtraHours:      budget.FormatHours(result.ExtraHours),
		TotalDailyHours: budget.FormatHours(result.TotalDailyHours),
		Message:         result.Message,
	}
}

// ToTeamDTO преобразует entity в DTO
func ToTeamDTO(team *entity.TeamWithMembers) TeamDTO {
	members := make([]ProfileDTO, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, ToProfileDTO(m))
	}

	return TeamDTO{
		TeamName: team.TeamName,
		Members:  members,
	}
}

// ToDailySummaryResponse преобразует сводку в DTO
func ToDailySummaryResponse(summary *entity.DailySummary) DailySummaryResponse {
	employees := make([]EmployeeDaySummaryDTO, 0, len(summary.Employees))
	for _, e := range summary.Employees {
		employees = append(employees, EmployeeDaySummaryDTO{
			EmpID:       e.EmpID,
			EmpName:     e.EmpName,
			TotalHours:  budget.FormatHours(e.TotalHours),
			NormalHours: budget.FormatHours(e.NormalHours),
			ExtraHours:  budget.FormatHours(e.ExtraHours),
			EntryCount:  e.EntryCount,
		})
	}

	return DailySummaryResponse{
		TeamName:  summary.TeamName,
		Date:      summary.Date,
		Employees: employees,
	}
}
