// Package dashboard holds the tenant dashboard aggregate types and the
// read repository that computes them.
package dashboard

import "context"

type DishCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type PackageCounts struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Available int64 `json:"available"`
	Inactive  int64 `json:"inactive"`
}

type ItemCounts struct {
	Total  int64 `json:"total"`
	Draft  int64 `json:"draft"`
	Linked int64 `json:"linked"`
}

type FinancialSummary struct {
	TotalPackageValue   float64 `json:"total_package_value"`
	AveragePackagePrice float64 `json:"average_package_price"`
	Currency            string  `json:"currency"`
}

// RecentDish is a denormalized dish row for the dashboard listing.
// Numeric fields are plain numbers for JSON safety.
type RecentDish struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

// RecentPackage is a denormalized package row for the dashboard listing.
type RecentPackage struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	TotalPrice  float64 `json:"total_price"`
	Currency    string  `json:"currency"`
	PeopleCount int     `json:"people_count"`
	IsActive    bool    `json:"is_active"`
	IsAvailable bool    `json:"is_available"`
	CreatedAt   string  `json:"created_at"`
}

type Stats struct {
	Dishes         DishCounts       `json:"dishes"`
	Packages       PackageCounts    `json:"packages"`
	PackageItems   ItemCounts       `json:"package_items"`
	Financials     FinancialSummary `json:"financials"`
	RecentDishes   []RecentDish     `json:"recent_dishes"`
	RecentPackages []RecentPackage  `json:"recent_packages"`
}

// Repository computes dashboard aggregates, all scoped to one caterer.
type Repository interface {
	DishCounts(ctx context.Context, catererID uint) (*DishCounts, error)
	PackageCounts(ctx context.Context, catererID uint) (*PackageCounts, error)
	ItemCounts(ctx context.Context, catererID uint) (*ItemCounts, error)
	FinancialSummary(ctx context.Context, catererID uint) (*FinancialSummary, error)
	RecentDishes(ctx context.Context, catererID uint, limit int) ([]RecentDish, error)
	RecentPackages(ctx context.Context, catererID uint, limit int) ([]RecentPackage, error)
}
