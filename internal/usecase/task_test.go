package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/budget"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/policy"
)

// In-memory фейки репозиториев для unit тестов usecase слоя

type fakeTaskRepo struct {
	tasks   map[string]*entity.TaskEntry
	listErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entity.TaskEntry)}
}

func (f *fakeTaskRepo) key(teamName, date, empID, taskID string) string {
	return teamName + "/" + date + "/" + empID + "/" + taskID
}

func (f *fakeTaskRepo) Create(_ context.Context, task *entity.TaskEntry) error {
	f.tasks[f.key(task.TeamName, task.Date, task.EmpID, task.TaskID)] = task
	return nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *entity.TaskEntry) error {
	key := f.key(task.TeamName, task.Date, task.EmpID, task.TaskID)
	if _, ok := f.tasks[key]; !ok {
		return domainErrors.ErrNotFound
	}
	f.tasks[key] = task
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, teamName, date, empID, taskID string) error {
	key := f.key(teamName, date, empID, taskID)
	if _, ok := f.tasks[key]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(f.tasks, key)
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, teamName, date, empID, taskID string) (*entity.TaskEntry, error) {
	task, ok := f.tasks[f.key(teamName, date, empID, taskID)]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) ListForEmployeeDay(_ context.Context, teamName, date, empID string) ([]*entity.TaskEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*entity.TaskEntry, 0)
	for _, task := range f.tasks {
		if task.TeamName == teamName && task.Date == date && task.EmpID == empID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskRepo) ListForTeamDay(_ context.Context, teamName, date string) ([]*entity.TaskEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*entity.TaskEntry, 0)
	for _, task := range f.tasks {
		if task.TeamName == teamName && task.Date == date {
			result = append(result, task)
		}
	}
	return result, nil
}

type fakeTeamRepo struct {
	teams map[string]*entity.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*entity.Team)}
}

func (f *fakeTeamRepo) Upsert(_ context.Context, team *entity.Team) error {
	f.teams[team.TeamName] = team
	return nil
}

func (f *fakeTeamRepo) GetByName(_ context.Context, teamName string) (*entity.Team, error) {
	team, ok := f.teams[teamName]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) Exists(_ context.Context, teamName string) (bool, error) {
	_, ok := f.teams[teamName]
	return ok, nil
}

type fakeCatalogRepo struct {
	registered  []*entity.CatalogEntry
	registerErr error
}

func (f *fakeCatalogRepo) Register(_ context.Context, entry *entity.CatalogEntry) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, entry)
	return nil
}

func (f *fakeCatalogRepo) ListValues(_ context.Context, teamName string, kind entity.CatalogKind) ([]string, error) {
	values := make([]string, 0)
	for _, e := range f.registered {
		if e.TeamName == teamName && e.Kind == kind {
			values = append(values, e.Value)
		}
	}
	return values, nil
}

// fakeTxManager выполняет функции без реальной транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) RunInEmployeeDayTransaction(ctx context.Context, _, _, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRoleLookup для политики доступа
type fakeRoleLookup struct {
	records map[string]*entity.RoleRecord
}

func (f *fakeRoleLookup) LookupRole(_ context.Context, empID string) (*entity.RoleRecord, error) {
	record, ok := f.records[empID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return record, nil
}

type taskFixture struct {
	uc       *TaskUseCase
	taskRepo *fakeTaskRepo
	catalog  *fakeCatalogRepo
}

func newTaskFixture(records map[string]*entity.RoleRecord) *taskFixture {
	taskRepo := newFakeTaskRepo()
	catalog := &fakeCatalogRepo{}

	uc := NewTaskUseCase(
		taskRepo,
		newFakeTeamRepo(),
		catalog,
		&fakeTxManager{},
		policy.NewAccessPolicy(&fakeRoleLookup{records: records}),
		budget.NewValidator(),
	)

	return &taskFixture{uc: uc, taskRepo: taskRepo, catalog: catalog}
}

func employeeProfile(empID, teamName string) *entity.UserProfile {
	return &entity.UserProfile{
		EmpID:    empID,
		EmpName:  "Emp " + empID,
		Role:     entity.RoleEmployee,
		TeamName: teamName,
	}
}

func validInput(empID string) *TaskInput {
	return &TaskInput{
		TeamName:  "alpha",
		Date:      "2024-01-15",
		EmpID:     empID,
		EmpName:   "Emp " + empID,
		WorkType:  entity.WorkTypeFullDay,
		TimeSpent: "9:00",
		Status:    string(entity.TaskStatusInProgress),
		Client:    "Acme",
		Project:   "Phoenix",
	}
}

func TestCreateTask_Success(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	result, err := f.uc.CreateTask(ctx, employeeProfile("e1", "alpha"), validInput("e1"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Task.TaskID)
	assert.Equal(t, 9.0, result.Validation.NormalHours)
	assert.Equal(t, 0.0, result.Validation.ExtraHours)
	assert.Len(t, f.taskRepo.tasks, 1)

	// Справочники зарегистрированы после записи
	clients, _ := f.catalog.ListValues(ctx, "alpha", entity.CatalogKindClient)
	assert.Equal(t, []string{"Acme"}, clients)
}

func TestCreateTask_AdminIsReadOnly(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	admin := &entity.UserProfile{EmpID: "a1", Role: entity.RoleAdmin}

	_, err := f.uc.CreateTask(ctx, admin, validInput("a1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrAdminReadOnly))
	assert.Empty(t, f.taskRepo.tasks)
}

func TestCreateTask_AccessDenied(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	// Сотрудник пишет в чужие записи
	_, err := f.uc.CreateTask(ctx, employeeProfile("e1", "alpha"), validInput("e2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrAccessDenied))
	assert.Empty(t, f.taskRepo.tasks)
}

func TestCreateTask_RejectionPersistsNothing(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	caller := employeeProfile("e1", "alpha")

	first := validInput("e1")
	first.TimeSpent = "5:00"
	_, err := f.uc.CreateTask(ctx, caller, first)
	require.NoError(t, err)

	second := validInput("e1")
	second.TimeSpent = "5:00"
	_, err = f.uc.CreateTask(ctx, caller, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrDailyLimitExceeded))

	// Отклоненная запись не сохранена даже частично
	assert.Len(t, f.taskRepo.tasks, 1)
}

func TestCreateTask_ReadFailureFailsClosed(t *testing.T) {
	f := newTaskFixture(nil)
	f.taskRepo.listErr = errors.New("store is down")
	ctx := context.Background()

	_, err := f.uc.CreateTask(ctx, employeeProfile("e1", "alpha"), validInput("e1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrCollaboratorDown))
	assert.Empty(t, f.taskRepo.tasks)
}

func TestCreateTask_CatalogFailureIsNonFatal(t *testing.T) {
	f := newTaskFixture(nil)
	f.catalog.registerErr = errors.New("catalog write failed")
	ctx := context.Background()

	result, err := f.uc.CreateTask(ctx, employeeProfile("e1", "alpha"), validInput("e1"))
	require.NoError(t, err)
	assert.NotNil(t, result.Task)
	assert.Len(t, f.taskRepo.tasks, 1)
}

func TestUpdateTask_ExcludesEditedEntryFromDailySum(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	caller := employeeProfile("e1", "alpha")

	first := validInput("e1")
	first.TimeSpent = "5:00"
	created, err := f.uc.CreateTask(ctx, caller, first)
	require.NoError(t, err)

	// Редактируем ту же запись до 9:00: без исключения её самой
	// из суммы дня вышло бы 14:00 и отказ
	edited := validInput("e1")
	edited.TimeSpent = "9:00"
	result, err := f.uc.UpdateTask(ctx, caller, created.Task.TaskID, edited)
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.Validation.TotalDailyHours)
	assert.Equal(t, "9:00", f.taskRepo.tasks[f.taskRepo.key("alpha", "2024-01-15", "e1", created.Task.TaskID)].TimeSpent)
}

func TestDeleteTask_AdminDenied(t *testing.T) {
	f := newTaskFixture(nil)
	ctx := context.Background()

	caller := employeeProfile("e1", "alpha")
	created, err := f.uc.CreateTask(ctx, caller, validInput("e1"))
	require.NoError(t, err)

	admin := &entity.UserProfile{EmpID: "a1", Role: entity.RoleAdmin}
	err = f.uc.DeleteTask(ctx, admin, "alpha", "2024-01-15", "e1", created.Task.TaskID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrAdminReadOnly))

	// Владелец удалить может
	require.NoError(t, f.uc.DeleteTask(ctx, caller, "alpha", "2024-01-15", "e1", created.Task.TaskID))
	assert.Empty(t, f.taskRepo.tasks)
}

func TestListTasks_TrackLeadSeesOnlyDirectReports(t *testing.T) {
	records := map[string]*entity.RoleRecord{
		"e1": {Role: entity.RoleEmployee, TeamName: "alpha", ReportsTo: "tr1"},
		"e2": {Role: entity.RoleEmployee, TeamName: "alpha", ReportsTo: "tr2"},
	}
	f := newTaskFixture(records)
	ctx := context.Background()

	require.NoError(t, f.taskRepo.Create(ctx, &entity.TaskEntry{
		TaskID: "t1", TeamName: "alpha", Date: "2024-01-15", EmpID: "e1", TimeSpent: "2:00",
	}))

	track := &entity.UserProfile{EmpID: "tr1", Role: entity.RoleTrackLead, TeamName: "alpha"}

	tasks, err := f.uc.ListTasks(ctx, track, "alpha", "2024-01-15", "e1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	// Сотрудник другого track-lead'а закрыт
	_, err = f.uc.ListTasks(ctx, track, "alpha", "2024-01-15", "e2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrAccessDenied))
}
