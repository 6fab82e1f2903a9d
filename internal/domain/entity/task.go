package entity

import "time"

// Встроенные типы работ. Помимо них команды могут заводить
// собственные строки workType - для них лимиты не применяются.
const (
	WorkTypeFullDay    = "Full-day"
	WorkTypeHalfDay    = "Half-day"
	WorkTypeRelaxation = "Relaxation"
	WorkTypeOverTime   = "Over Time"
)

// TaskStatus представляет статус задачи
type TaskStatus string

const (
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusOnHold     TaskStatus = "On Hold"
)

// ParseTaskStatus преобразует строку в TaskStatus
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusCompleted, TaskStatusInProgress, TaskStatusOnHold:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

// TaskEntry представляет одну запись о работе за день.
// Идентичность записи - (TeamName, Date, EmpID, TaskID),
// Date хранится строкой в формате ISO YYYY-MM-DD.
type TaskEntry struct {
	TaskID               string
	TeamName             string
	Date                 string
	EmpID                string
	EmpName              string
	WorkType             string
	TimeSpent            string
	Status               TaskStatus
	PercentageCompletion string
	Client               string
	Project              string
	Phase                string
	Description          string
	Remarks              string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
