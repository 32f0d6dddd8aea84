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

// PackageItemRepository implements catalog.PackageItemRepository on GORM.
type PackageItemRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPackageItemRepository creates a new package item repository
func NewPackageItemRepository(gormDB *gorm.DB, logger logger.Interface) catalog.PackageItemRepository {
	return &PackageItemRepository{
		db:     gormDB,
		logger: logger,
	}
}

// Create creates a new package item (draft when PackageID is nil)
func (r *PackageItemRepository) Create(ctx context.Context, item *catalog.PackageItem) error {
	model := packageItemToModel(item)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create package item", "caterer_id", item.CatererID, "error", err)
		return fmt.Errorf("failed to create package item: %w", err)
	}

	*item = *packageItemToEntity(model)

	r.logger.Infow("package item created", "id", model.ID, "caterer_id", model.CatererID, "draft", model.PackageID == nil)
	return nil
}

// ListOwned returns all items owned by the caterer, newest first
func (r *PackageItemRepository) ListOwned(ctx context.Context, catererID uint, filter catalog.PackageItemFilter) ([]*catalog.PackageItem, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageItemModel{}).
		Where("caterer_id = ?", catererID)

	if filter.PackageID != nil {
		query = query.Where("package_id = ?", *filter.PackageID)
	}
	if filter.DishID != nil {
		query = query.Where("dish_id = ?", *filter.DishID)
	}
	if filter.DraftOnly {
		query = query.Where("package_id IS NULL")
	}

	var itemModels []*models.PackageItemModel
	if err := query.Order("created_at DESC").Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to list package items", "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to list package items: %w", err)
	}

	items := make([]*catalog.PackageItem, 0, len(itemModels))
	for _, model := range itemModels {
		items = append(items, packageItemToEntity(model))
	}

	return items, nil
}

// GetOwned retrieves an item by ID scoped to the owning caterer
func (r *PackageItemRepository) GetOwned(ctx context.Context, id, catererID uint) (*catalog.PackageItem, error) {
	var model models.PackageItemModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND caterer_id = ?", id, catererID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get package item", "id", id, "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to get package item: %w", err)
	}

	return packageItemToEntity(&model), nil
}

// UpdateOwned applies the partial update to an owned item
func (r *PackageItemRepository) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.PackageItemUpdate) error {
	changes := map[string]interface{}{}

	if update.DishID != nil {
		changes["dish_id"] = *update.DishID
	}
	if update.Quantity != nil {
		changes["quantity"] = *update.Quantity
	}

	if len(changes) == 0 {
		return nil
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageItemModel{}).
		Where("id = ? AND caterer_id = ?", id, catererID).
		Updates(changes).Error
	if err != nil {
		r.logger.Errorw("failed to update package item", "id", id, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to update package item: %w", err)
	}

	return nil
}

// DeleteOwned soft-deletes an owned item
func (r *PackageItemRepository) DeleteOwned(ctx context.Context, id, catererID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND caterer_id = ?", id, catererID).
		Delete(&models.PackageItemModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete package item", "id", id, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to delete package item: %w", err)
	}

	r.logger.Infow("package item deleted", "id", id, "caterer_id", catererID)
	return nil
}

// CountOwnedByIDs counts how many of the given IDs are rows owned by the caterer
func (r *PackageItemRepository) CountOwnedByIDs(ctx context.Context, ids []uint, catererID uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageItemModel{}).
		Where("id IN ? AND caterer_id = ?", ids, catererID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count owned items", "caterer_id", catererID, "error", err)
		return 0, fmt.Errorf("failed to count owned items: %w", err)
	}

	return count, nil
}

// LinkToPackage sets package_id on every item in ids in one statement
func (r *PackageItemRepository) LinkToPackage(ctx context.Context, ids []uint, packageID, catererID uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageItemModel{}).
		Where("id IN ? AND caterer_id = ?", ids, catererID).
		Update("package_id", packageID).Error
	if err != nil {
		r.logger.Errorw("failed to link items to package", "package_id", packageID, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to link items to package: %w", err)
	}

	r.logger.Infow("items linked to package", "package_id", packageID, "count", len(ids), "caterer_id", catererID)
	return nil
}

func packageItemToModel(entity *catalog.PackageItem) *models.PackageItemModel {
	return &models.PackageItemModel{
		ID:        entity.ID,
		CatererID: entity.CatererID,
		DishID:    entity.DishID,
		PackageID: entity.PackageID,
		Quantity:  entity.Quantity,
	}
}

func packageItemToEntity(model *models.PackageItemModel) *catalog.PackageItem {
	return &catalog.PackageItem{
		ID:        model.ID,
		CatererID: model.CatererID,
		DishID:    model.DishID,
		PackageID: model.PackageID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
