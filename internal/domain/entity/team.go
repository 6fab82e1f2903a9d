package entity

import "time"

// TechLeadsTeam - зарезервированное имя виртуальной команды,
// в которой tech-lead'ы ведут собственные записи
const TechLeadsTeam = "techLeads"

type Team struct {
	TeamName     string
	TeamLeaderID string
	TechLeadID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TeamWithMembers представляет команду со списком профилей участников
type TeamWithMembers struct {
	TeamName string
	Members  []*UserProfile
}
