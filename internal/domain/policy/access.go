package policy

import (
	"context"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
)

// RoleLookup возвращает роль/команду/руководителя по empId.
// Реализуется identity-коллаборатором (у нас - репозиторием профилей).
type RoleLookup interface {
	LookupRole(ctx context.Context, empID string) (*entity.RoleRecord, error)
}

// AccessPolicy принимает решения о доступе к данным команд и сотрудников.
// Чистая функция над переданным профилем: никакого глобального состояния,
// ошибка lookup'а трактуется как отказ в доступе, а не как сбой операции.
type AccessPolicy struct {
	roles RoleLookup
}

// NewAccessPolicy создает новую политику доступа
func NewAccessPolicy(roles RoleLookup) *AccessPolicy {
	return &AccessPolicy{roles: roles}
}

// CanAccessTeam проверяет, видит ли вызывающий данные команды
func (p *AccessPolicy) CanAccessTeam(caller *entity.UserProfile, teamName string) bool {
	switch caller.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleTechLead:
		return caller.ManagesTeam(teamName) || teamName == entity.TechLeadsTeam
	case entity.RoleTeamLeader, entity.RoleTrackLead, entity.RoleEmployee:
		return teamName == caller.TeamName
	default:
		return false
	}
}

// CanAccessEmployee проверяет, видит ли вызывающий данные конкретного
// сотрудника внутри команды. Правила проверяются по порядку, первое
// совпадение выигрывает.
func (p *AccessPolicy) CanAccessEmployee(ctx context.Context, caller *entity.UserProfile, teamName, targetEmpID string) bool {
	// Self-доступ разрешен всегда, независимо от команды
	if caller.EmpID == targetEmpID {
		return true
	}

	switch caller.Role {
	case entity.RoleAdmin:
		return true

	case entity.RoleTechLead:
		// В виртуальной команде techLeads чужие записи не видны
		if teamName == entity.TechLeadsTeam {
			return false
		}
		return caller.ManagesTeam(teamName)

	case entity.RoleTeamLeader:
		if teamName != caller.TeamName {
			return false
		}
		target, err := p.roles.LookupRole(ctx, targetEmpID)
		if err != nil {
			// Недоступный identity-сервис или неизвестный empId - отказ
			return false
		}
		return target.Role == entity.RoleTrackLead || target.Role == entity.RoleEmployee

	case entity.RoleTrackLead:
		if teamName != caller.TeamName {
			return false
		}
		target, err := p.roles.LookupRole(ctx, targetEmpID)
		if err != nil {
			return false
		}
		return target.Role == entity.RoleEmployee && target.ReportsTo == caller.EmpID

	case entity.RoleEmployee:
		return false

	default:
		return false
	}
}

// CanWriteTask проверяет write-доступ к записям задач: admin - read-only
// роль, любые его попытки записи запрещены независимо от CanAccessEmployee
func (p *AccessPolicy) CanWriteTask(caller *entity.UserProfile) bool {
	return caller.Role != entity.RoleAdmin
}
