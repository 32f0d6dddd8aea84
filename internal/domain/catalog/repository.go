package catalog

import "context"

// DishRepository defines tenant-scoped persistence operations for dishes.
// Get/Update/Delete take the owning caterer ID and apply it as a query
// predicate; implementations return (nil, nil) when no owned row matches.
type DishRepository interface {
	Create(ctx context.Context, dish *Dish) error
	ListOwned(ctx context.Context, catererID uint, filter DishFilter) ([]*Dish, error)
	GetOwned(ctx context.Context, id, catererID uint) (*Dish, error)
	UpdateOwned(ctx context.Context, id, catererID uint, update DishUpdate) error
	DeleteOwned(ctx context.Context, id, catererID uint) error
	CountReferencingItems(ctx context.Context, dishID uint) (int64, error)
}

// PackageRepository defines tenant-scoped persistence operations for packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) error
	ListOwned(ctx context.Context, catererID uint, filter PackageFilter) ([]*Package, error)
	GetOwned(ctx context.Context, id, catererID uint) (*Package, error)
	GetOwnedWithItems(ctx context.Context, id, catererID uint) (*Package, error)
	UpdateOwned(ctx context.Context, id, catererID uint, update PackageUpdate) error
}

// PackageItemRepository defines tenant-scoped persistence operations for
// package items, including the batch link operation.
type PackageItemRepository interface {
	Create(ctx context.Context, item *PackageItem) error
	ListOwned(ctx context.Context, catererID uint, filter PackageItemFilter) ([]*PackageItem, error)
	GetOwned(ctx context.Context, id, catererID uint) (*PackageItem, error)
	UpdateOwned(ctx context.Context, id, catererID uint, update PackageItemUpdate) error
	DeleteOwned(ctx context.Context, id, catererID uint) error
	// CountOwnedByIDs returns how many of the given item IDs resolve to rows
	// owned by the caterer. Used for the all-or-nothing link check.
	CountOwnedByIDs(ctx context.Context, ids []uint, catererID uint) (int64, error)
	// LinkToPackage sets package_id on every item in ids.
	LinkToPackage(ctx context.Context, ids []uint, packageID, catererID uint) error
}
