package catalog

import "time"

// PackageItem links a dish into a package. PackageID is nil while the item
// is a draft that has not been attached to a package yet.
type PackageItem struct {
	ID        uint      `json:"id"`
	CatererID uint      `json:"caterer_id"`
	DishID    uint      `json:"dish_id"`
	PackageID *uint     `json:"package_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDraft reports whether the item has not been linked to a package.
func (i *PackageItem) IsDraft() bool {
	return i.PackageID == nil
}

// PackageItemFilter holds optional filters for item listing.
type PackageItemFilter struct {
	PackageID *uint
	DishID    *uint
	DraftOnly bool
}

// PackageItemUpdate carries partial updates; nil fields are left unchanged.
type PackageItemUpdate struct {
	DishID   *uint
	Quantity *int
}
