package models

import (
	"time"

	"gorm.io/gorm"

	"caterly/internal/shared/constants"
)

// PackageModel represents the database persistence model for catering packages
type PackageModel struct {
	ID            uint   `gorm:"primarykey"`
	CatererID     uint   `gorm:"not null;index:idx_packages_caterer"`
	PackageTypeID uint   `gorm:"not null;index"`
	Name          string `gorm:"not null;size:255"`
	Description   string `gorm:"type:text"`
	ImageURL      string `gorm:"size:500"`
	PeopleCount   int
	TotalPrice    float64
	Currency      string  `gorm:"size:10;default:SAR"`
	IsActive      bool    `gorm:"default:true;index"`
	IsAvailable   bool    `gorm:"default:true"`
	Rating        float64 `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Items []PackageItemModel `gorm:"foreignKey:PackageID"`
}

// TableName specifies the table name for GORM
func (PackageModel) TableName() string {
	return constants.TablePackages
}

// BeforeCreate hook for GORM
func (p *PackageModel) BeforeCreate(tx *gorm.DB) error {
	if p.Currency == "" {
		p.Currency = constants.DefaultCurrency
	}
	return nil
}
