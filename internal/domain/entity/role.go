package entity

// Role представляет закрытый набор ролей пользователей.
// Диспетчеризация по ролям всегда идет через switch по этому типу,
// добавление новой роли ломает компиляцию во всех местах проверок.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleTrackLead  Role = "track-lead"
	RoleTeamLeader Role = "team-leader"
	RoleTechLead   Role = "tech-lead"
	RoleAdmin      Role = "admin"
)

// ParseRole преобразует строку в Role, вторым значением возвращает валидность
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleTrackLead, RoleTeamLeader, RoleTechLead, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// IsValid проверяет, что роль входит в закрытый набор
func (r Role) IsValid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// String возвращает строковое представление роли
func (r Role) String() string {
	return string(r)
}
