package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/dashboard"
	"caterly/internal/domain/user"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

const recentLimit = 5

type GetStatsUseCase struct {
	userRepo      user.Repository
	dashboardRepo dashboard.Repository
	logger        logger.Interface
}

func NewGetStatsUseCase(
	userRepo user.Repository,
	dashboardRepo dashboard.Repository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepo:      userRepo,
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// Execute assembles the dashboard for one caterer. The account must exist
// and carry the CATERER role; otherwise the dashboard is not found.
func (uc *GetStatsUseCase) Execute(ctx context.Context, catererID uint) (*dashboard.Stats, error) {
	account, err := uc.userRepo.GetByID(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil || !account.IsCaterer() {
		return nil, errors.NewNotFoundError("caterer not found")
	}

	dishCounts, err := uc.dashboardRepo.DishCounts(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to count dishes: %w", err)
	}

	packageCounts, err := uc.dashboardRepo.PackageCounts(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}

	itemCounts, err := uc.dashboardRepo.ItemCounts(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to count package items: %w", err)
	}

	financials, err := uc.dashboardRepo.FinancialSummary(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute financial summary: %w", err)
	}

	recentDishes, err := uc.dashboardRepo.RecentDishes(ctx, catererID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent dishes: %w", err)
	}

	recentPackages, err := uc.dashboardRepo.RecentPackages(ctx, catererID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent packages: %w", err)
	}

	return &dashboard.Stats{
		Dishes:         *dishCounts,
		Packages:       *packageCounts,
		PackageItems:   *itemCounts,
		Financials:     *financials,
		RecentDishes:   recentDishes,
		RecentPackages: recentPackages,
	}, nil
}
