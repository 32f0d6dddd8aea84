// Package catalog holds the caterer-owned catalog entities (dishes,
// packages, package items) and their repository contracts. Every query in
// this package is scoped by caterer ID; a row that exists but belongs to
// another caterer is indistinguishable from a missing row.
package catalog

import "time"

type Dish struct {
	ID            uint      `json:"id"`
	CatererID     uint      `json:"caterer_id"`
	CuisineTypeID uint      `json:"cuisine_type_id"`
	CategoryID    uint      `json:"category_id"`
	SubCategoryID uint      `json:"sub_category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Quantity      *int      `json:"quantity,omitempty"`
	Pieces        int       `json:"pieces"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DishFilter holds optional equality filters for dish listing.
type DishFilter struct {
	CuisineTypeID *uint
	CategoryID    *uint
	SubCategoryID *uint
	IsActive      *bool
}

// DishUpdate carries partial updates; nil fields are left unchanged.
type DishUpdate struct {
	CuisineTypeID *uint
	CategoryID    *uint
	SubCategoryID *uint
	Name          *string
	Description   *string
	ImageURL      *string
	Price         *float64
	Currency      *string
	Quantity      *int
	Pieces        *int
	IsActive      *bool
}
