package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/budget"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
)

// SummaryRepository реализует repository.SummaryRepository для PostgreSQL
type SummaryRepository struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository создает новый репозиторий сводок
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

// GetDailySummary агрегирует часы команды за день по сотрудникам.
// time_spent хранится строкой H:MM, парсим её прямо в SQL.
func (r *SummaryRepository) GetDailySummary(ctx context.Context, teamName, date string) (*entity.DailySummary, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT emp_id,
		       MIN(emp_name) AS emp_name,
		       SUM(split_part(time_spent, ':', 1)::int + split_part(time_spent, ':', 2)::int / 60.0) AS total_hours,
		       COUNT(*) AS entry_count
		FROM task_entries
		WHERE team_name = $1 AND date = $2
		GROUP BY emp_id
		ORDER BY emp_name
	`

	rows, err := conn.Query(ctx, query, teamName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}
	defer rows.Close()

	summary := &entity.DailySummary{
		TeamName:  teamName,
		Date:      date,
		Employees: make([]entity.EmployeeDaySummary, 0),
	}

	for rows.Next() {
		var emp entity.EmployeeDaySummary
		if err := rows.Scan(&emp.EmpID, &emp.EmpName, &emp.TotalHours, &emp.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}

		emp.NormalHours = emp.TotalHours
		if emp.TotalHours > budget.StandardDayHours {
			emp.NormalHours = budget.StandardDayHours
			emp.ExtraHours = emp.TotalHours - budget.StandardDayHours
		}

		summary.Employees = append(summary.Employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary rows: %w", err)
	}

	return summary, nil
}
