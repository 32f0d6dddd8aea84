package models

import (
	"time"

	"gorm.io/gorm"

	"caterly/internal/shared/constants"
)

// PackageItemModel represents the database persistence model for package items.
// A NULL PackageID marks a draft item that has not been linked to a package yet.
type PackageItemModel struct {
	ID        uint  `gorm:"primarykey"`
	CatererID uint  `gorm:"not null;index:idx_package_items_caterer"`
	DishID    uint  `gorm:"not null;index"`
	PackageID *uint `gorm:"index"`
	Quantity  int   `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PackageItemModel) TableName() string {
	return constants.TablePackageItems
}

// BeforeCreate hook for GORM
func (i *PackageItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	return nil
}
