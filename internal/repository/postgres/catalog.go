package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
)

// CatalogRepository реализует repository.CatalogRepository для PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository создает новый репозиторий справочников
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Register регистрирует значение справочника, повтор - no-op
func (r *CatalogRepository) Register(ctx context.Context, entry *entity.CatalogEntry) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO catalog_entries (team_name, kind, value, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_name, kind, value) DO NOTHING
	`

	_, err := conn.Exec(ctx, query,
		entry.TeamName,
		string(entry.Kind),
		entry.Value,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to register catalog value: %w", err)
	}

	return nil
}

// ListValues возвращает значения справочника команды
func (r *CatalogRepository) ListValues(ctx context.Context, teamName string, kind entity.CatalogKind) ([]string, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT value
		FROM catalog_entries
		WHERE team_name = $1 AND kind = $2
		ORDER BY value
	`

	rows, err := conn.Query(ctx, query, teamName, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog values: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan catalog value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog values: %w", err)
	}

	return values, nil
}
