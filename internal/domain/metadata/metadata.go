// Package metadata holds the global lookup tables (cuisine types,
// categories, subcategories, free forms, package types). Lookup rows are
// reference data shared across tenants; reads only.
package metadata

import "context"

type CuisineType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SubCategory struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

type FreeForm struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PackageType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Repository provides lookup-table reads and the existence checks the
// catalog services use to validate foreign keys.
type Repository interface {
	ListCuisineTypes(ctx context.Context) ([]*CuisineType, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ListSubCategories(ctx context.Context, categoryID *uint) ([]*SubCategory, error)
	ListFreeForms(ctx context.Context) ([]*FreeForm, error)
	ListPackageTypes(ctx context.Context) ([]*PackageType, error)

	CuisineTypeExists(ctx context.Context, id uint) (bool, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	GetSubCategory(ctx context.Context, id uint) (*SubCategory, error)
	PackageTypeExists(ctx context.Context, id uint) (bool, error)
}
