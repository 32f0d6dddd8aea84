package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"caterly/internal/domain/dashboard"
	"caterly/internal/infrastructure/persistence/models"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/logger"
)

// DashboardRepository computes tenant-scoped aggregates for the dashboard.
type DashboardRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB, logger logger.Interface) dashboard.Repository {
	return &DashboardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *DashboardRepository) DishCounts(ctx context.Context, catererID uint) (*dashboard.DishCounts, error) {
	base := r.db.WithContext(ctx).Model(&models.DishModel{}).Where("caterer_id = ?", catererID)

	var counts dashboard.DishCounts
	if err := base.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count dishes: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&counts.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active dishes: %w", err)
	}
	counts.Inactive = counts.Total - counts.Active

	return &counts, nil
}

func (r *DashboardRepository) PackageCounts(ctx context.Context, catererID uint) (*dashboard.PackageCounts, error) {
	base := r.db.WithContext(ctx).Model(&models.PackageModel{}).Where("caterer_id = ?", catererID)

	var counts dashboard.PackageCounts
	if err := base.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&counts.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active packages: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("is_available = ?", true).Count(&counts.Available).Error; err != nil {
		return nil, fmt.Errorf("failed to count available packages: %w", err)
	}
	counts.Inactive = counts.Total - counts.Active

	return &counts, nil
}

func (r *DashboardRepository) ItemCounts(ctx context.Context, catererID uint) (*dashboard.ItemCounts, error) {
	base := r.db.WithContext(ctx).Model(&models.PackageItemModel{}).Where("caterer_id = ?", catererID)

	var counts dashboard.ItemCounts
	if err := base.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count package items: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("package_id IS NULL").Count(&counts.Draft).Error; err != nil {
		return nil, fmt.Errorf("failed to count draft items: %w", err)
	}
	counts.Linked = counts.Total - counts.Draft

	return &counts, nil
}

func (r *DashboardRepository) FinancialSummary(ctx context.Context, catererID uint) (*dashboard.FinancialSummary, error) {
	type row struct {
		Total float64
		Avg   float64
		Count int64
	}

	var agg row
	err := r.db.WithContext(ctx).
		Model(&models.PackageModel{}).
		Select("COALESCE(SUM(total_price), 0) AS total, COALESCE(AVG(total_price), 0) AS avg, COUNT(*) AS count").
		Where("caterer_id = ?", catererID).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate package prices: %w", err)
	}

	// Currency of the first package, or the fixed default when none exist
	currency := constants.DefaultCurrency
	if agg.Count > 0 {
		var first models.PackageModel
		err := r.db.WithContext(ctx).
			Where("caterer_id = ?", catererID).
			Order("created_at ASC").
			First(&first).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to get first package: %w", err)
		}
		if first.Currency != "" {
			currency = first.Currency
		}
	}

	return &dashboard.FinancialSummary{
		TotalPackageValue:   agg.Total,
		AveragePackagePrice: agg.Avg,
		Currency:            currency,
	}, nil
}

func (r *DashboardRepository) RecentDishes(ctx context.Context, catererID uint, limit int) ([]dashboard.RecentDish, error) {
	var rows []models.DishModel
	err := r.db.WithContext(ctx).
		Where("caterer_id = ?", catererID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent dishes: %w", err)
	}

	recent := make([]dashboard.RecentDish, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, dashboard.RecentDish{
			ID:        row.ID,
			Name:      row.Name,
			Price:     row.Price,
			Currency:  row.Currency,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}

	return recent, nil
}

func (r *DashboardRepository) RecentPackages(ctx context.Context, catererID uint, limit int) ([]dashboard.RecentPackage, error) {
	var rows []models.PackageModel
	err := r.db.WithContext(ctx).
		Where("caterer_id = ?", catererID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent packages: %w", err)
	}

	recent := make([]dashboard.RecentPackage, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, dashboard.RecentPackage{
			ID:          row.ID,
			Name:        row.Name,
			TotalPrice:  row.TotalPrice,
			Currency:    row.Currency,
			PeopleCount: row.PeopleCount,
			IsActive:    row.IsActive,
			IsAvailable: row.IsAvailable,
			CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		})
	}

	return recent, nil
}
