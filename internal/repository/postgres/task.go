package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
)

// TaskRepository реализует repository.TaskRepository для PostgreSQL.
// Записи ключуются (team_name, date, emp_id, task_id) - та же вложенность
// путей, что и в документной схеме.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository создает новый репозиторий записей задач
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `task_id, team_name, date, emp_id, emp_name, work_type, time_spent, status, percentage_completion, client, project, phase, description, remarks, created_at, updated_at`

// Create создает новую запись задачи
func (r *TaskRepository) Create(ctx context.Context, task *entity.TaskEntry) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO task_entries (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := conn.Exec(ctx, query,
		task.TaskID,
		task.TeamName,
		task.Date,
		task.EmpID,
		task.EmpName,
		task.WorkType,
		task.TimeSpent,
		string(task.Status),
		task.PercentageCompletion,
		task.Client,
		task.Project,
		task.Phase,
		task.Description,
		task.Remarks,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task entry: %w", err)
	}

	return nil
}

// Update обновляет запись задачи по полному ключу
func (r *TaskRepository) Update(ctx context.Context, task *entity.TaskEntry) error {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE task_entries
		SET emp_name = $5, work_type = $6, time_spent = $7, status = $8, percentage_completion = $9,
		    client = $10, project = $11, phase = $12, description = $13, remarks = $14, updated_at = $15
		WHERE team_name = $1 AND date = $2 AND emp_id = $3 AND task_id = $4
	`

	result, err := conn.Exec(ctx, query,
		task.TeamName,
		task.Date,
		task.EmpID,
		task.TaskID,
		task.EmpName,
		task.WorkType,
		task.TimeSpent,
		string(task.Status),
		task.PercentageCompletion,
		task.Client,
		task.Project,
		task.Phase,
		task.Description,
		task.Remarks,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update task entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// Delete удаляет запись задачи по полному ключу
func (r *TaskRepository) Delete(ctx context.Context, teamName, date, empID, taskID string) error {
	conn := getConn(ctx, r.pool)

	query := `
		DELETE FROM task_entries
		WHERE team_name = $1 AND date = $2 AND emp_id = $3 AND task_id = $4
	`

	result, err := conn.Exec(ctx, query, teamName, date, empID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// GetByID возвращает запись задачи по полному ключу
func (r *TaskRepository) GetByID(ctx context.Context, teamName, date, empID, taskID string) (*entity.TaskEntry, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + taskColumns + `
		FROM task_entries
		WHERE team_name = $1 AND date = $2 AND emp_id = $3 AND task_id = $4
	`

	return scanTask(conn.QueryRow(ctx, query, teamName, date, empID, taskID))
}

// ListForEmployeeDay возвращает все записи сотрудника за день
func (r *TaskRepository) ListForEmployeeDay(ctx context.Context, teamName, date, empID string) ([]*entity.TaskEntry, error) {
	return r.list(ctx, `
		SELECT `+taskColumns+`
		FROM task_entries
		WHERE team_name = $1 AND date = $2 AND emp_id = $3
		ORDER BY created_at
	`, teamName, date, empID)
}

// ListForTeamDay возвращает все записи команды за день
func (r *TaskRepository) ListForTeamDay(ctx context.Context, teamName, date string) ([]*entity.TaskEntry, error) {
	return r.list(ctx, `
		SELECT `+taskColumns+`
		FROM task_entries
		WHERE team_name = $1 AND date = $2
		ORDER BY emp_name, created_at
	`, teamName, date)
}

// list выполняет запрос списка записей
func (r *TaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entity.TaskEntry, error) {
	conn := getConn(ctx, r.pool)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task entries: %w", err)
	}
	defer rows.Close()

	tasks := make([]*entity.TaskEntry, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task entries: %w", err)
	}

	return tasks, nil
}

// scanTask читает одну строку записи задачи
func scanTask(row pgx.Row) (*entity.TaskEntry, error) {
	var task entity.TaskEntry
	var status string

	err := row.Scan(
		&task.TaskID,
		&task.TeamName,
		&task.Date,
		&task.EmpID,
		&task.EmpName,
		&task.WorkType,
		&task.TimeSpent,
		&status,
		&task.PercentageCompletion,
		&task.Client,
		&task.Project,
		&task.Phase,
		&task.Description,
		&task.Remarks,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan task entry: %w", err)
	}

	task.Status = entity.TaskStatus(status)
	return &task, nil
}
