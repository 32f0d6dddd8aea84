package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caterly/internal/domain/catalog"
	"caterly/internal/infrastructure/persistence/models"
	"caterly/internal/shared/db"
	"caterly/internal/shared/logger"
)

// PackageRepository implements catalog.PackageRepository on GORM.
type PackageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(gormDB *gorm.DB, logger logger.Interface) catalog.PackageRepository {
	return &PackageRepository{
		db:     gormDB,
		logger: logger,
	}
}

// Create creates a new package
func (r *PackageRepository) Create(ctx context.Context, pkg *catalog.Package) error {
	model := packageToModel(pkg)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create package", "caterer_id", pkg.CatererID, "error", err)
		return fmt.Errorf("failed to create package: %w", err)
	}

	*pkg = *packageToEntity(model)

	r.logger.Infow("package created", "id", model.ID, "caterer_id", model.CatererID)
	return nil
}

// ListOwned returns all packages owned by the caterer, newest first
func (r *PackageRepository) ListOwned(ctx context.Context, catererID uint, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageModel{}).
		Where("caterer_id = ?", catererID)

	if filter.PackageTypeID != nil {
		query = query.Where("package_type_id = ?", *filter.PackageTypeID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}

	var pkgModels []*models.PackageModel
	if err := query.Order("created_at DESC").Find(&pkgModels).Error; err != nil {
		r.logger.Errorw("failed to list packages", "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	packages := make([]*catalog.Package, 0, len(pkgModels))
	for _, model := range pkgModels {
		packages = append(packages, packageToEntity(model))
	}

	return packages, nil
}

// GetOwned retrieves a package by ID scoped to the owning caterer
func (r *PackageRepository) GetOwned(ctx context.Context, id, catererID uint) (*catalog.Package, error) {
	var model models.PackageModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND caterer_id = ?", id, catererID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get package", "id", id, "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return packageToEntity(&model), nil
}

// GetOwnedWithItems retrieves an owned package with its items preloaded
func (r *PackageRepository) GetOwnedWithItems(ctx context.Context, id, catererID uint) (*catalog.Package, error) {
	var model models.PackageModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Items").
		Where("id = ? AND caterer_id = ?", id, catererID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get package with items", "id", id, "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return packageToEntity(&model), nil
}

// UpdateOwned applies the partial update to an owned package
func (r *PackageRepository) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.PackageUpdate) error {
	changes := map[string]interface{}{}

	if update.PackageTypeID != nil {
		changes["package_type_id"] = *update.PackageTypeID
	}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.ImageURL != nil {
		changes["image_url"] = *update.ImageURL
	}
	if update.PeopleCount != nil {
		changes["people_count"] = *update.PeopleCount
	}
	if update.TotalPrice != nil {
		changes["total_price"] = *update.TotalPrice
	}
	if update.Currency != nil {
		changes["currency"] = *update.Currency
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}
	if update.IsAvailable != nil {
		changes["is_available"] = *update.IsAvailable
	}
	if update.Rating != nil {
		changes["rating"] = *update.Rating
	}

	if len(changes) == 0 {
		return nil
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageModel{}).
		Where("id = ? AND caterer_id = ?", id, catererID).
		Updates(changes).Error
	if err != nil {
		r.logger.Errorw("failed to update package", "id", id, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to update package: %w", err)
	}

	return nil
}

func packageToModel(entity *catalog.Package) *models.PackageModel {
	return &models.PackageModel{
		ID:            entity.ID,
		CatererID:     entity.CatererID,
		PackageTypeID: entity.PackageTypeID,
		Name:          entity.Name,
		Description:   entity.Description,
		ImageURL:      entity.ImageURL,
		PeopleCount:   entity.PeopleCount,
		TotalPrice:    entity.TotalPrice,
		Currency:      entity.Currency,
		IsActive:      entity.IsActive,
		IsAvailable:   entity.IsAvailable,
		Rating:        entity.Rating,
	}
}

func packageToEntity(model *models.PackageModel) *catalog.Package {
	entity := &catalog.Package{
		ID:            model.ID,
		CatererID:     model.CatererID,
		PackageTypeID: model.PackageTypeID,
		Name:          model.Name,
		Description:   model.Description,
		ImageURL:      model.ImageURL,
		PeopleCount:   model.PeopleCount,
		TotalPrice:    model.TotalPrice,
		Currency:      model.Currency,
		IsActive:      model.IsActive,
		IsAvailable:   model.IsAvailable,
		Rating:        model.Rating,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}

	for i := range model.Items {
		entity.Items = append(entity.Items, *packageItemToEntity(&model.Items[i]))
	}

	return entity
}
