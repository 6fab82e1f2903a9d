package entity

import "time"

// UserProfile представляет профиль пользователя из identity-сервиса.
// TeamName пустой для tech-lead и admin, ManagedTeams заполняется
// только для tech-lead, ReportsTo указывает на empId прямого руководителя.
type UserProfile struct {
	EmpID        string
	EmpName      string
	Email        string
	PasswordHash string
	Role         Role
	TeamName     string
	ManagedTeams []string
	ReportsTo    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ManagesTeam проверяет, входит ли команда в список управляемых
func (p *UserProfile) ManagesTeam(teamName string) bool {
	for _, t := range p.ManagedTeams {
		if t == teamName {
			return true
		}
	}
	return false
}

// RoleRecord представляет результат lookupUserRole по empId
type RoleRecord struct {
	Role      Role
	TeamName  string
	ReportsTo string
}
