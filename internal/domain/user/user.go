// Package user holds the user entity and its repository contract.
package user

import (
	"time"

	"caterly/internal/shared/authorization"
)

// User is the account entity. The password hash never leaves this layer:
// it is excluded from JSON serialization.
type User struct {
	ID           uint                   `json:"id"`
	FirstName    string                 `json:"first_name"`
	LastName     string                 `json:"last_name"`
	Phone        string                 `json:"phone"`
	Email        string                 `json:"email"`
	PasswordHash string                 `json:"-"`
	Role         authorization.UserRole `json:"role"`
	CompanyName  *string                `json:"company_name,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// IsCaterer reports whether the user is a caterer tenant.
func (u *User) IsCaterer() bool {
	return u.Role.IsCaterer()
}
