package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/domain/dashboard"
	"caterly/internal/domain/user"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type mockUserRepo struct {
	user *user.User
	err  error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return m.err }

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.user != nil, m.err
}

type mockDashboardRepo struct {
	err error
}

func (m *mockDashboardRepo) DishCounts(ctx context.Context, catererID uint) (*dashboard.DishCounts, error) {
	return &dashboard.DishCounts{Total: 10, Active: 7, Inactive: 3}, m.err
}

func (m *mockDashboardRepo) PackageCounts(ctx context.Context, catererID uint) (*dashboard.PackageCounts, error) {
	return &dashboard.PackageCounts{Total: 4, Active: 3, Available: 2, Inactive: 1}, m.err
}

func (m *mockDashboardRepo) ItemCounts(ctx context.Context, catererID uint) (*dashboard.ItemCounts, error) {
	return &dashboard.ItemCounts{Total: 12, Draft: 5, Linked: 7}, m.err
}

func (m *mockDashboardRepo) FinancialSummary(ctx context.Context, catererID uint) (*dashboard.FinancialSummary, error) {
	return &dashboard.FinancialSummary{TotalPackageValue: 6000, AveragePackagePrice: 1500, Currency: "SAR"}, m.err
}

func (m *mockDashboardRepo) RecentDishes(ctx context.Context, catererID uint, limit int) ([]dashboard.RecentDish, error) {
	return make([]dashboard.RecentDish, limit), m.err
}

func (m *mockDashboardRepo) RecentPackages(ctx context.Context, catererID uint, limit int) ([]dashboard.RecentPackage, error) {
	return make([]dashboard.RecentPackage, limit), m.err
}

func catererAccount() *user.User {
	company := "Night Feast"
	return &user.User{ID: 7, Role: authorization.RoleCaterer, CompanyName: &company}
}

func TestGetStatsUseCase_Success(t *testing.T) {
	uc := NewGetStatsUseCase(&mockUserRepo{user: catererAccount()}, &mockDashboardRepo{}, logger.NewLogger())

	stats, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, stats.Dishes.Total, stats.Dishes.Active+stats.Dishes.Inactive)
	assert.Equal(t, stats.PackageItems.Total, stats.PackageItems.Draft+stats.PackageItems.Linked)
	assert.Equal(t, "SAR", stats.Financials.Currency)
	assert.Len(t, stats.RecentDishes, 5)
	assert.Len(t, stats.RecentPackages, 5)
}

func TestGetStatsUseCase_UnknownUser(t *testing.T) {
	uc := NewGetStatsUseCase(&mockUserRepo{}, &mockDashboardRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 404)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestGetStatsUseCase_NonCatererRole(t *testing.T) {
	account := &user.User{ID: 8, Role: authorization.RoleUser}
	uc := NewGetStatsUseCase(&mockUserRepo{user: account}, &mockDashboardRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 8)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
