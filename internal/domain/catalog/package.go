package catalog

import "time"

type Package struct {
	ID            uint          `json:"id"`
	CatererID     uint          `json:"caterer_id"`
	PackageTypeID uint          `json:"package_type_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	PeopleCount   int           `json:"people_count"`
	TotalPrice    float64       `json:"total_price"`
	Currency      string        `json:"currency"`
	IsActive      bool          `json:"is_active"`
	IsAvailable   bool          `json:"is_available"`
	Rating        float64       `json:"rating"`
	Items         []PackageItem `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PackageFilter holds optional equality filters for package listing.
type PackageFilter struct {
	PackageTypeID *uint
	IsActive      *bool
	IsAvailable   *bool
}

// PackageUpdate carries partial updates; nil fields are left unchanged.
type PackageUpdate struct {
	PackageTypeID *uint
	Name          *string
	Description   *string
	ImageURL      *string
	PeopleCount   *int
	TotalPrice    *float64
	Currency      *string
	IsActive      *bool
	IsAvailable   *bool
	Rating        *float64
}
