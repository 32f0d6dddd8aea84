package models

import (
	"time"

	"gorm.io/gorm"

	"caterly/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	FirstName    string  `gorm:"not null;size:100"`
	LastName     string  `gorm:"not null;size:100"`
	Phone        string  `gorm:"not null;size:30"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string  `gorm:"not null;size:255"`
	Role         string  `gorm:"not null;size:20;index:idx_users_role"`
	CompanyName  *string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
