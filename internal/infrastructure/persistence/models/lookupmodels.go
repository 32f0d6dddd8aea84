package models

import (
	"time"

	"caterly/internal/shared/constants"
)

// Lookup tables are global reference data and are never tenant-scoped.

type CuisineTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CuisineTypeModel) TableName() string {
	return constants.TableCuisineTypes
}

type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

// SubCategoryModel always belongs to a parent category.
type SubCategoryModel struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null;size:100"`
	CategoryID uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SubCategoryModel) TableName() string {
	return constants.TableSubCategories
}

type FreeFormModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FreeFormModel) TableName() string {
	return constants.TableFreeForms
}

type PackageTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PackageTypeModel) TableName() string {
	return constants.TablePackageTypes
}
