package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/auth"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/repository"
)

// ProfileUseCase реализует регистрацию, логин и разрешение профиля
// вызывающего - роль identity-коллаборатора
type ProfileUseCase struct {
	userRepo  repository.UserRepository
	teamRepo  repository.TeamRepository
	txManager repository.TransactionManager
	tokens    *auth.TokenIssuer
}

// NewProfileUseCase создает новый usecase профилей
func NewProfileUseCase(
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	txManager repository.TransactionManager,
	tokens *auth.TokenIssuer,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		txManager: txManager,
		tokens:    tokens,
	}
}

// RegisterInput представляет данные формы регистрации
type RegisterInput struct {
	EmpID        string
	EmpName      string
	Email        string
	Password     string
	Role         string
	TeamName     string
	ManagedTeams []string
	ReportsTo    string
}

// AuthResult представляет профиль с выданным токеном
type AuthResult struct {
	Profile *entity.UserProfile
	Token   string
}

// Register создает профиль пользователя и команды, которых он касается.
// Профиль после регистрации неизменяем, кроме явного обновления.
func (uc *ProfileUseCase) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, invalidInput("role must be one of employee, track-lead, team-leader, tech-lead, admin")
	}

	if input.EmpID == "" || input.EmpName == "" || input.Email == "" || input.Password == "" {
		return nil, invalidInput("emp_id, emp_name, email and password are required")
	}

	// Роли с одной командой обязаны её назвать; tech-lead и admin
	// командной привязки не имеют
	switch role {
	case entity.RoleEmployee, entity.RoleTrackLead, entity.RoleTeamLeader:
		if input.TeamName == "" {
			return nil, invalidInput("team_name is required for this role")
		}
		if input.TeamName == entity.TechLeadsTeam {
			return nil, invalidInput("team_name techLeads is reserved for tech-leads")
		}
	case entity.RoleTechLead:
		if len(input.ManagedTeams) == 0 {
			return nil, invalidInput("managed_teams is required for tech-lead")
		}
		input.TeamName = ""
	case entity.RoleAdmin:
		input.TeamName = ""
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := &entity.UserProfile{
		EmpID:        input.EmpID,
		EmpName:      input.EmpName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		TeamName:     input.TeamName,
		ManagedTeams: input.ManagedTeams,
		ReportsTo:    input.ReportsTo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.userRepo.GetByEmpID(ctx, input.EmpID); err == nil {
			return domainErrors.NewDomainError(
				"EMPLOYEE_EXISTS",
				"emp_id is already registered",
				domainErrors.ErrEmployeeExists,
			)
		} else if !errors.Is(err, domainErrors.ErrNotFound) {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}

		if err := uc.userRepo.Create(ctx, profile); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return uc.ensureTeams(ctx, profile, now)
	})

	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(profile.EmpID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{Profile: profile, Token: token}, nil
}

// Login проверяет пароль и выдает токен
func (uc *ProfileUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, invalidInput("email and password are required")
	}

	profile, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, unauthorized()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(profile.PasswordHash, password) {
		return nil, unauthorized()
	}

	token, err := uc.tokens.Generate(profile.EmpID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{Profile: profile, Token: token}, nil
}

// ResolveCaller возвращает профиль аутентифицированного вызывающего
// по empId из токена
func (uc *ProfileUseCase) ResolveCaller(ctx context.Context, empID string) (*entity.UserProfile, error) {
	profile, err := uc.userRepo.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, unauthorized()
		}
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}
	return profile, nil
}

// ensureTeams создает команды, на которые ссылается профиль,
// и проставляет back-reference'ы иерархии
func (uc *ProfileUseCase) ensureTeams(ctx context.Context, profile *entity.UserProfile, now time.Time) error {
	switch profile.Role {
	case entity.RoleEmployee, entity.RoleTrackLead:
		return uc.upsertTeam(ctx, &entity.Team{TeamName: profile.TeamName, CreatedAt: now, UpdatedAt: now})

	case entity.RoleTeamLeader:
		return uc.upsertTeam(ctx, &entity.Team{
			TeamName:     profile.TeamName,
			TeamLeaderID: profile.EmpID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})

	case entity.RoleTechLead:
		for _, teamName := range profile.ManagedTeams {
			err := uc.upsertTeam(ctx, &entity.Team{
				TeamName:   teamName,
				TechLeadID: profile.EmpID,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			if err != nil {
				return err
			}
		}
		// Виртуальная команда для личных записей tech-lead'ов
		return uc.upsertTeam(ctx, &entity.Team{TeamName: entity.TechLeadsTeam, CreatedAt: now, UpdatedAt: now})

	case entity.RoleAdmin:
		return nil

	default:
		return nil
	}
}

// upsertTeam создает или обновляет команду
func (uc *ProfileUseCase) upsertTeam(ctx context.Context, team *entity.Team) error {
	if err := uc.teamRepo.Upsert(ctx, team); err != nil {
		return fmt.Errorf("failed to upsert team %s: %w", team.TeamName, err)
	}
	return nil
}

// unauthorized возвращает стандартную ошибку аутентификации
func unauthorized() error {
	return domainErrors.NewDomainError(
		"UNAUTHORIZED",
		"invalid credentials",
		domainErrors.ErrUnauthorized,
	)
}
