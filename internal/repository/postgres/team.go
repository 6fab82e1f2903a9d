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

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository создает новый репозиторий команд
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Upsert создает команду при первом обращении или обновляет back-reference'ы
func (r *TeamRepository) Upsert(ctx context.Context, team *entity.Team) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO teams (team_name, team_leader_id, tech_lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (team_name) DO UPDATE SET
			team_leader_id = CASE WHEN EXCLUDED.team_leader_id <> '' THEN EXCLUDED.team_leader_id ELSE teams.team_leader_id END,
			tech_lead_id = CASE WHEN EXCLUDED.tech_lead_id <> '' THEN EXCLUDED.tech_lead_id ELSE teams.tech_lead_id END,
			updated_at = EXCLUDED.updated_at
	`

	_, err := conn.Exec(ctx, query,
		team.TeamName,
		team.TeamLeaderID,
		team.TechLeadID,
		team.CreatedAt,
		team.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert team: %w", err)
	}

	return nil
}

// GetByName возвращает команду по имени
func (r *TeamRepository) GetByName(ctx context.Context, teamName string) (*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT team_name, team_leader_id, tech_lead_id, created_at, updated_at
		FROM teams
		WHERE team_name = $1
	`

	var team entity.Team
	err := conn.QueryRow(ctx, query, teamName).Scan(
		&team.TeamName,
		&team.TeamLeaderID,
		&team.TechLeadID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

// Exists проверяет существование команды
func (r *TeamRepository) Exists(ctx context.Context, teamName string) (bool, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = $1)
	`

	var exists bool
	err := conn.QueryRow(ctx, query, teamName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}

	return exists, nil
}
