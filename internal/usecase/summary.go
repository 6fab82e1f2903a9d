package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/policy"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/repository"
)

// SummaryUseCase реализует дневные сводки для дашбордов лидов
type SummaryUseCase struct {
	summaryRepo repository.SummaryRepository
	policy      *policy.AccessPolicy
}

// NewSummaryUseCase создает новый usecase сводок
func NewSummaryUseCase(summaryRepo repository.SummaryRepository, accessPolicy *policy.AccessPolicy) *SummaryUseCase {
	return &SummaryUseCase{
		summaryRepo: summaryRepo,
		policy:      accessPolicy,
	}
}

// GetDailySummary возвращает сводку нагрузки команды за день
func (uc *SummaryUseCase) GetDailySummary(ctx context.Context, caller *entity.UserProfile, teamName, date string) (*entity.DailySummary, error) {
	if !uc.policy.CanAccessTeam(caller, teamName) {
		return nil, accessDenied()
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, invalidInput("date must be in YYYY-MM-DD format")
	}

	summary, err := uc.summaryRepo.GetDailySummary(ctx, teamName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return summary, nil
}
