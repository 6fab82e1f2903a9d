package repository

import (
	"context"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) error
	Update(ctx context.Context, user *entity.UserProfile) error
	GetByEmpID(ctx context.Context, empID string) (*entity.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	GetByTeam(ctx context.Context, teamName string) ([]*entity.UserProfile, error)
	LookupRole(ctx context.Context, empID string) (*entity.RoleRecord, error)
}

type TeamRepository interface {
	Upsert(ctx context.Context, team *entity.Team) error
	GetByName(ctx context.Context, teamName string) (*entity.Team, error)
	Exists(ctx context.Context, teamName string) (bool, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *entity.TaskEntry) error
	Update(ctx context.Context, task *entity.TaskEntry) error
	Delete(ctx context.Context, teamName, date, empID, taskID string) error
	GetByID(ctx context.Context, teamName, date, empID, taskID string) (*entity.TaskEntry, error)
	ListForEmployeeDay(ctx context.Context, teamName, date, empID string) ([]*entity.TaskEntry, error)
	ListForTeamDay(ctx context.Context, teamName, date string) ([]*entity.TaskEntry, error)
}

type CatalogRepository interface {
	Register(ctx context.Context, entry *entity.CatalogEntry) error
	ListValues(ctx context.Context, teamName string, kind entity.CatalogKind) ([]string, error)
}

type SummaryRepository interface {
	GetDailySummary(ctx context.Context, teamName, date string) (*entity.DailySummary, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// RunInEmployeeDayTransaction дополнительно берет advisory-лок на
	// (teamName, date, empID), сериализуя конкурентные записи одного дня
	RunInEmployeeDayTransaction(ctx context.Context, teamName, date, empID string, fn func(ctx context.Context) error) error
}
