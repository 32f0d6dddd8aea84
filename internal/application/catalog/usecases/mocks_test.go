package usecases

import (
	"context"

	"caterly/internal/domain/catalog"
	"caterly/internal/domain/metadata"
)

// Hand-rolled mocks shared by the catalog use case tests.

type mockDishRepo struct {
	dish      *catalog.Dish
	dishes    []*catalog.Dish
	refs      int64
	err       error
	deleteErr error

	created   *catalog.Dish
	updated   *catalog.DishUpdate
	deletedID uint
}

func (m *mockDishRepo) Create(ctx context.Context, dish *catalog.Dish) error {
	if m.err != nil {
		return m.err
	}
	dish.ID = 11
	m.created = dish
	return nil
}

func (m *mockDishRepo) ListOwned(ctx context.Context, catererID uint, filter catalog.DishFilter) ([]*catalog.Dish, error) {
	return m.dishes, m.err
}

func (m *mockDishRepo) GetOwned(ctx context.Context, id, catererID uint) (*catalog.Dish, error) {
	return m.dish, m.err
}

func (m *mockDishRepo) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.DishUpdate) error {
	m.updated = &update
	return m.err
}

func (m *mockDishRepo) DeleteOwned(ctx context.Context, id, catererID uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockDishRepo) CountReferencingItems(ctx context.Context, dishID uint) (int64, error) {
	return m.refs, m.err
}

type mockPackageRepo struct {
	pkg     *catalog.Package
	pkgs    []*catalog.Package
	err     error
	created *catalog.Package
	updated *catalog.PackageUpdate
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *catalog.Package) error {
	if m.err != nil {
		return m.err
	}
	pkg.ID = 21
	m.created = pkg
	return nil
}

func (m *mockPackageRepo) ListOwned(ctx context.Context, catererID uint, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	return m.pkgs, m.err
}

func (m *mockPackageRepo) GetOwned(ctx context.Context, id, catererID uint) (*catalog.Package, error) {
	return m.pkg, m.err
}

func (m *mockPackageRepo) GetOwnedWithItems(ctx context.Context, id, catererID uint) (*catalog.Package, error) {
	return m.pkg, m.err
}

func (m *mockPackageRepo) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.PackageUpdate) error {
	m.updated = &update
	return m.err
}

type mockItemRepo struct {
	item       *catalog.PackageItem
	items      []*catalog.PackageItem
	ownedCount int64
	err        error
	linkErr    error

	created     *catalog.PackageItem
	linkedIDs   []uint
	linkedPkgID uint
	deletedID   uint
}

func (m *mockItemRepo) Create(ctx context.Context, item *catalog.PackageItem) error {
	if m.err != nil {
		return m.err
	}
	item.ID = 31
	m.created = item
	return nil
}

func (m *mockItemRepo) ListOwned(ctx context.Context, catererID uint, filter catalog.PackageItemFilter) ([]*catalog.PackageItem, error) {
	return m.items, m.err
}

func (m *mockItemRepo) GetOwned(ctx context.Context, id, catererID uint) (*catalog.PackageItem, error) {
	return m.item, m.err
}

func (m *mockItemRepo) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.PackageItemUpdate) error {
	return m.err
}

func (m *mockItemRepo) DeleteOwned(ctx context.Context, id, catererID uint) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

func (m *mockItemRepo) CountOwnedByIDs(ctx context.Context, ids []uint, catererID uint) (int64, error) {
	return m.ownedCount, m.err
}

func (m *mockItemRepo) LinkToPackage(ctx context.Context, ids []uint, packageID, catererID uint) error {
	if m.linkErr != nil {
		return m.linkErr
	}
	m.linkedIDs = ids
	m.linkedPkgID = packageID
	return nil
}

type mockMetaRepo struct {
	cuisineOK   bool
	categoryOK  bool
	subCategory *metadata.SubCategory
	pkgTypeOK   bool
	err         error
}

func (m *mockMetaRepo) ListCuisineTypes(ctx context.Context) ([]*metadata.CuisineType, error) {
	return nil, m.err
}

func (m *mockMetaRepo) ListCategories(ctx context.Context) ([]*metadata.Category, error) {
	return nil, m.err
}

func (m *mockMetaRepo) ListSubCategories(ctx context.Context, categoryID *uint) ([]*metadata.SubCategory, error) {
	return nil, m.err
}

func (m *mockMetaRepo) ListFreeForms(ctx context.Context) ([]*metadata.FreeForm, error) {
	return nil, m.err
}

func (m *mockMetaRepo) ListPackageTypes(ctx context.Context) ([]*metadata.PackageType, error) {
	return nil, m.err
}

func (m *mockMetaRepo) CuisineTypeExists(ctx context.Context, id uint) (bool, error) {
	return m.cuisineOK, m.err
}

func (m *mockMetaRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return m.categoryOK, m.err
}

func (m *mockMetaRepo) GetSubCategory(ctx context.Context, id uint) (*metadata.SubCategory, error) {
	return m.subCategory, m.err
}

func (m *mockMetaRepo) PackageTypeExists(ctx context.Context, id uint) (bool, error) {
	return m.pkgTypeOK, m.err
}

// mockTxRunner executes the function directly; the tests only care about
// the logic inside the transaction, not transactional semantics.
type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

func validMetaRepo() *mockMetaRepo {
	return &mockMetaRepo{
		cuisineOK:   true,
		categoryOK:  true,
		subCategory: &metadata.SubCategory{ID: 3, Name: "Grills", CategoryID: 2},
		pkgTypeOK:   true,
	}
}
