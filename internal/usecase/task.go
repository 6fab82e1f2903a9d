package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/budget"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/policy"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/repository"
)

// TaskUseCase реализует бизнес-логику записей задач: проверка доступа,
// валидация дневного бюджета и запись выполняются строго в этом порядке,
// при любом отказе запись не сохраняется.
type TaskUseCase struct {
	taskRepo    repository.TaskRepository
	teamRepo    repository.TeamRepository
	catalogRepo repository.CatalogRepository
	txManager   repository.TransactionManager
	policy      *policy.AccessPolicy
	validator   *budget.Validator
}

// NewTaskUseCase создает новый usecase для записей задач
func NewTaskUseCase(
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	catalogRepo repository.CatalogRepository,
	txManager repository.TransactionManager,
	accessPolicy *policy.AccessPolicy,
	validator *budget.Validator,
) *TaskUseCase {
	return &TaskUseCase{
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		policy:      accessPolicy,
		validator:   validator,
	}
}

// TaskInput представляет данные формы создания/редактирования задачи
type TaskInput struct {
	TeamName             string
	Date                 string
	EmpID                string
	EmpName              string
	WorkType             string
	TimeSpent            string
	Status               string
	PercentageCompletion string
	Client               string
	Project              string
	Phase                string
	Description          string
	Remarks              string
}

// TaskWriteResult представляет сохраненную запись с разбивкой часов дня
type TaskWriteResult struct {
	Task       *entity.TaskEntry
	Validation *budget.ValidationResult
}

// CreateTask создает запись задачи: доступ -> валидация бюджета -> запись.
// Чтение существующих записей и вставка идут в одной транзакции под
// локом дня сотрудника, чтобы две конкурентные отправки не обошли бюджет.
func (uc *TaskUseCase) CreateTask(ctx context.Context, caller *entity.UserProfile, input *TaskInput) (*TaskWriteResult, error) {
	if err := uc.checkWriteAccess(ctx, caller, input.TeamName, input.EmpID); err != nil {
		return nil, err
	}

	if err := validateTaskInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &entity.TaskEntry{
		TaskID:               uuid.NewString(),
		TeamName:             input.TeamName,
		Date:                 input.Date,
		EmpID:                input.EmpID,
		EmpName:              input.EmpName,
		WorkType:             input.WorkType,
		TimeSpent:            input.TimeSpent,
		Status:               entity.TaskStatus(input.Status),
		PercentageCompletion: input.PercentageCompletion,
		Client:               input.Client,
		Project:              input.Project,
		Phase:                input.Phase,
		Description:          input.Description,
		Remarks:              input.Remarks,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	var validation *budget.ValidationResult

	err := uc.txManager.RunInEmployeeDayTransaction(ctx, input.TeamName, input.Date, input.EmpID, func(ctx context.Context) error {
		// Убеждаемся, что команда существует (создаем при первом касании)
		if err := uc.teamRepo.Upsert(ctx, &entity.Team{
			TeamName:  input.TeamName,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to ensure team: %w", err)
		}

		existing, err := uc.taskRepo.ListForEmployeeDay(ctx, input.TeamName, input.Date, input.EmpID)
		if err != nil {
			// Неизвестная сумма дня - отказываем, а не считаем её нулевой
			return domainErrors.NewDomainError(
				"COLLABORATOR_UNAVAILABLE",
				"failed to read existing entries for the day",
				domainErrors.ErrCollaboratorDown,
			)
		}

		validation, err = uc.validator.Validate(input.WorkType, input.TimeSpent, existing, "")
		if err != nil {
			return err
		}

		if err := uc.taskRepo.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Пост-коммитная регистрация новых значений справочников: best-effort,
	// её сбой не откатывает уже сохраненную задачу
	uc.registerCatalogValues(ctx, task)

	return &TaskWriteResult{Task: task, Validation: validation}, nil
}

// UpdateTask редактирует запись задачи. Редактируемая запись исключается
// из суммы дня, чтобы её часы не считались дважды.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, caller *entity.UserProfile, taskID string, input *TaskInput) (*TaskWriteResult, error) {
	if err := uc.checkWriteAccess(ctx, caller, input.TeamName, input.EmpID); err != nil {
		return nil, err
	}

	if err := validateTaskInput(input); err != nil {
		return nil, err
	}

	var task *entity.TaskEntry
	var validation *budget.ValidationResult

	err := uc.txManager.RunInEmployeeDayTransaction(ctx, input.TeamName, input.Date, input.EmpID, func(ctx context.Context) error {
		current, err := uc.taskRepo.GetByID(ctx, input.TeamName, input.Date, input.EmpID, taskID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return domainErrors.NewDomainError(
					"NOT_FOUND",
					"task entry not found",
					domainErrors.ErrNotFound,
				)
			}
			return fmt.Errorf("failed to get task entry: %w", err)
		}

		existing, err := uc.taskRepo.ListForEmployeeDay(ctx, input.TeamName, input.Date, input.EmpID)
		if err != nil {
			return domainErrors.NewDomainError(
				"COLLABORATOR_UNAVAILABLE",
				"failed to read existing entries for the day",
				domainErrors.ErrCollaboratorDown,
			)
		}

		validation, err = uc.validator.Validate(input.WorkType, input.TimeSpent, existing, taskID)
		if err != nil {
			return err
		}

		current.EmpName = input.EmpName
		current.WorkType = input.WorkType
		current.TimeSpent = input.TimeSpent
		current.Status = entity.TaskStatus(input.Status)
		current.PercentageCompletion = input.PercentageCompletion
		current.Client = input.Client
		current.Project = input.Project
		current.Phase = input.Phase
		current.Description = input.Description
		current.Remarks = input.Remarks
		current.UpdatedAt = time.Now()

		if err := uc.taskRepo.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update task entry: %w", err)
		}

		task = current
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.registerCatalogValues(ctx, task)

	return &TaskWriteResult{Task: task, Validation: validation}, nil
}

// DeleteTask удаляет запись задачи
func (uc *TaskUseCase) DeleteTask(ctx context.Context, caller *entity.UserProfile, teamName, date, empID, taskID string) error {
	if err := uc.checkWriteAccess(ctx, caller, teamName, empID); err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, teamName, date, empID, taskID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NewDomainError(
				"NOT_FOUND",
				"task entry not found",
				domainErrors.ErrNotFound,
			)
		}
		return fmt.Errorf("failed to delete task entry: %w", err)
	}

	return nil
}

// ListTasks возвращает записи за день: по сотруднику, если empID задан,
// иначе по всей команде
func (uc *TaskUseCase) ListTasks(ctx context.Context, caller *entity.UserProfile, teamName, date, empID string) ([]*entity.TaskEntry, error) {
	if empID != "" {
		if !uc.policy.CanAccessEmployee(ctx, caller, teamName, empID) {
			return nil, accessDenied()
		}

		tasks, err := uc.taskRepo.ListForEmployeeDay(ctx, teamName, date, empID)
		if err != nil {
			return nil, fmt.Errorf("failed to list task entries: %w", err)
		}
		return tasks, nil
	}

	if !uc.policy.CanAccessTeam(caller, teamName) {
		return nil, accessDenied()
	}

	tasks, err := uc.taskRepo.ListForTeamDay(ctx, teamName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list task entries: %w", err)
	}
	return tasks, nil
}

// checkWriteAccess проверяет write-доступ к записям сотрудника.
// Admin - read-only роль: его попытки записи дают отдельный код ошибки.
func (uc *TaskUseCase) checkWriteAccess(ctx context.Context, caller *entity.UserProfile, teamName, empID string) error {
	if !uc.policy.CanWriteTask(caller) {
		return domainErrors.NewDomainError(
			"ADMIN_READ_ONLY",
			"admin is a read-only role and cannot modify task entries",
			domainErrors.ErrAdminReadOnly,
		)
	}

	if !uc.policy.CanAccessEmployee(ctx, caller, teamName, empID) {
		return accessDenied()
	}

	return nil
}

// registerCatalogValues регистрирует новые значения выпадающих списков
// после успешной записи задачи. Ошибки только логируются.
func (uc *TaskUseCase) registerCatalogValues(ctx context.Context, task *entity.TaskEntry) {
	now := time.Now()

	values := []struct {
		kind  entity.CatalogKind
		value string
	}{
		{entity.CatalogKindEmployee, task.EmpName},
		{entity.CatalogKindClient, task.Client},
		{entity.CatalogKindProject, task.Project},
	}

	for _, v := range values {
		if v.value == "" {
			continue
		}

		err := uc.catalogRepo.Register(ctx, &entity.CatalogEntry{
			TeamName:  task.TeamName,
			Kind:      v.kind,
			Value:     v.value,
			CreatedAt: now,
		})
		if err != nil {
			log.Printf("WARN: failed to register %s catalog value %q for team %s: %v", v.kind, v.value, task.TeamName, err)
		}
	}
}

// validateTaskInput проверяет обязательные поля формы задачи
func validateTaskInput(input *TaskInput) error {
	if input.TeamName == "" || input.EmpID == "" || input.Date == "" {
		return invalidInput("team_name, emp_id and date are required")
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return invalidInput("date must be in YYYY-MM-DD format")
	}

	if input.WorkType == "" {
		return invalidInput("work_type is required")
	}

	if input.Status != "" {
		if _, ok := entity.ParseTaskStatus(input.Status); !ok {
			return invalidInput("status must be Completed, In Progress or On Hold")
		}
	}

	return nil
}

// accessDenied возвращает стандартную ошибку отказа в доступе
func accessDenied() error {
	return domainErrors.NewDomainError(
		"ACCESS_DENIED",
		"caller is not permitted to access this team or employee",
		domainErrors.ErrAccessDenied,
	)
}

// invalidInput возвращает ошибку некорректного ввода
func invalidInput(message string) error {
	return domainErrors.NewDomainError(
		"INVALID_INPUT",
		message,
		domainErrors.ErrInvalidInput,
	)
}
