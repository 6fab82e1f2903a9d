package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/policy"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/repository"
)

// TeamUseCase реализует бизнес-логику для команд
type TeamUseCase struct {
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	policy      *policy.AccessPolicy
}

// NewTeamUseCase создает новый usecase для команд
func NewTeamUseCase(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	accessPolicy *policy.AccessPolicy,
) *TeamUseCase {
	return &TeamUseCase{
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		policy:      accessPolicy,
	}
}

// GetTeamWithMembers возвращает команду со списком участников
func (uc *TeamUseCase) GetTeamWithMembers(ctx context.Context, caller *entity.UserProfile, teamName string) (*entity.TeamWithMembers, error) {
	if !uc.policy.CanAccessTeam(caller, teamName) {
		return nil, accessDenied()
	}

	// Проверяем существование команды
	_, err := uc.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewDomainError(
				"NOT_FOUND",
				"team not found",
				domainErrors.ErrNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := uc.userRepo.GetByTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	return &entity.TeamWithMembers{
		TeamName: teamName,
		Members:  members,
	}, nil
}

// ListCatalogValues возвращает значения справочника команды для
// выпадающих списков формы задачи
func (uc *TeamUseCase) ListCatalogValues(ctx context.Context, caller *entity.UserProfile, teamName string, kind entity.CatalogKind) ([]string, error) {
	if !uc.policy.CanAccessTeam(caller, teamName) {
		return nil, accessDenied()
	}

	switch kind {
	case entity.CatalogKindEmployee, entity.CatalogKindClient, entity.CatalogKindProject:
	default:
		return nil, invalidInput("kind must be employee, client or project")
	}

	values, err := uc.catalogRepo.ListValues(ctx, teamName, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog values: %w", err)
	}

	return values, nil
}
