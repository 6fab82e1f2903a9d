package entity

// EmployeeDaySummary представляет суммарную нагрузку сотрудника за день
type EmployeeDaySummary struct {
	EmpID       string
	EmpName     string
	TotalHours  float64
	NormalHours float64
	ExtraHours  float64
	EntryCount  int
}

// DailySummary представляет сводку по команде за один день
type DailySummary struct {
	TeamName  string
	Date      string
	Employees []EmployeeDaySummary
}
