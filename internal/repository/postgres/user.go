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

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository создает новый репозиторий профилей
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает новый профиль пользователя
func (r *UserRepository) Create(ctx context.Context, user *entity.UserProfile) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO users (emp_id, emp_name, email, password_hash, role, team_name, managed_teams, reports_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := conn.Exec(ctx, query,
		user.EmpID,
		user.EmpName,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.TeamName,
		user.ManagedTeams,
		user.ReportsTo,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Update обновляет профиль пользователя
func (r *UserRepository) Update(ctx context.Context, user *entity.UserProfile) error {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE users
		SET emp_name = $2, email = $3, password_hash = $4, role = $5, team_name = $6, managed_teams = $7, reports_to = $8, updated_at = $9
		WHERE emp_id = $1
	`

	result, err := conn.Exec(ctx, query,
		user.EmpID,
		user.EmpName,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.TeamName,
		user.ManagedTeams,
		user.ReportsTo,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// GetByEmpID возвращает профиль по empId
func (r *UserRepository) GetByEmpID(ctx context.Context, empID string) (*entity.UserProfile, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT emp_id, emp_name, email, password_hash, role, team_name, managed_teams, reports_to, created_at, updated_at
		FROM users
		WHERE emp_id = $1
	`

	return scanUser(conn.QueryRow(ctx, query, empID))
}

// GetByEmail возвращает профиль по email (используется на логине)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT emp_id, emp_name, email, password_hash, role, team_name, managed_teams, reports_to, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return scanUser(conn.QueryRow(ctx, query, email))
}

// GetByTeam возвращает все профили команды
func (r *UserRepository) GetByTeam(ctx context.Context, teamName string) ([]*entity.UserProfile, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT emp_id, emp_name, email, password_hash, role, team_name, managed_teams, reports_to, created_at, updated_at
		FROM users
		WHERE team_name = $1
		ORDER BY emp_name
	`

	rows, err := conn.Query(ctx, query, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.UserProfile, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return users, nil
}

// LookupRole возвращает роль, команду и руководителя по empId
func (r *UserRepository) LookupRole(ctx context.Context, empID string) (*entity.RoleRecord, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT role, team_name, reports_to
		FROM users
		WHERE emp_id = $1
	`

	var record entity.RoleRecord
	var role string
	err := conn.QueryRow(ctx, query, empID).Scan(&role, &record.TeamName, &record.ReportsTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup role: %w", err)
	}

	record.Role = entity.Role(role)
	return &record, nil
}

// scanUser читает одну строку профиля
func scanUser(row pgx.Row) (*entity.UserProfile, error) {
	var user entity.UserProfile
	var role string

	err := row.Scan(
		&user.EmpID,
		&user.EmpName,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.TeamName,
		&user.ManagedTeams,
		&user.ReportsTo,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Role = entity.Role(role)
	return &user, nil
}
