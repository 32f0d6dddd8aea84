package models

import (
	"time"

	"gorm.io/gorm"

	"caterly/internal/shared/constants"
)

// DishModel represents the database persistence model for dishes
type DishModel struct {
	ID            uint   `gorm:"primarykey"`
	CatererID     uint   `gorm:"not null;index:idx_dishes_caterer"`
	CuisineTypeID uint   `gorm:"not null;index"`
	CategoryID    uint   `gorm:"not null;index"`
	SubCategoryID uint   `gorm:"not null;index"`
	Name          string `gorm:"not null;size:255"`
	Description   string `gorm:"type:text"`
	ImageURL      string `gorm:"size:500"`
	Price         float64
	Currency      string `gorm:"size:10;default:SAR"`
	Quantity      *int
	Pieces        int  `gorm:"default:1"`
	IsActive      bool `gorm:"default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (DishModel) TableName() string {
	return constants.TableDishes
}

// BeforeCreate hook for GORM
func (d *DishModel) BeforeCreate(tx *gorm.DB) error {
	if d.Currency == "" {
		d.Currency = constants.DefaultCurrency
	}
	if d.Pieces == 0 {
		d.Pieces = constants.DefaultPieces
	}
	return nil
}
