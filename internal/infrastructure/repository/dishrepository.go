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

// DishRepository implements catalog.DishRepository on GORM.
// Every read/write is scoped by caterer_id; a row owned by another caterer
// behaves exactly like a missing row.
type DishRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewDishRepository creates a new dish repository
func NewDishRepository(gormDB *gorm.DB, logger logger.Interface) catalog.DishRepository {
	return &DishRepository{
		db:     gormDB,
		logger: logger,
	}
}

// Create creates a new dish
func (r *DishRepository) Create(ctx context.Context, dish *catalog.Dish) error {
	model := dishToModel(dish)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create dish", "caterer_id", dish.CatererID, "error", err)
		return fmt.Errorf("failed to create dish: %w", err)
	}

	*dish = *dishToEntity(model)

	r.logger.Infow("dish created", "id", model.ID, "caterer_id", model.CatererID)
	return nil
}

// ListOwned returns all dishes owned by the caterer, newest first
func (r *DishRepository) ListOwned(ctx context.Context, catererID uint, filter catalog.DishFilter) ([]*catalog.Dish, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.DishModel{}).
		Where("caterer_id = ?", catererID)

	if filter.CuisineTypeID != nil {
		query = query.Where("cuisine_type_id = ?", *filter.CuisineTypeID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubCategoryID != nil {
		query = query.Where("sub_category_id = ?", *filter.SubCategoryID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var dishModels []*models.DishModel
	if err := query.Order("created_at DESC").Find(&dishModels).Error; err != nil {
		r.logger.Errorw("failed to list dishes", "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	dishes := make([]*catalog.Dish, 0, len(dishModels))
	for _, model := range dishModels {
		dishes = append(dishes, dishToEntity(model))
	}

	return dishes, nil
}

// GetOwned retrieves a dish by ID scoped to the owning caterer
func (r *DishRepository) GetOwned(ctx context.Context, id, catererID uint) (*catalog.Dish, error) {
	var model models.DishModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND caterer_id = ?", id, catererID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get dish", "id", id, "caterer_id", catererID, "error", err)
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}

	return dishToEntity(&model), nil
}

// UpdateOwned applies the partial update to an owned dish
func (r *DishRepository) UpdateOwned(ctx context.Context, id, catererID uint, update catalog.DishUpdate) error {
	changes := map[string]interface{}{}

	if update.CuisineTypeID != nil {
		changes["cuisine_type_id"] = *update.CuisineTypeID
	}
	if update.CategoryID != nil {
		changes["category_id"] = *update.CategoryID
	}
	if update.SubCategoryID != nil {
		changes["sub_category_id"] = *update.SubCategoryID
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
	if update.Price != nil {
		changes["price"] = *update.Price
	}
	if update.Currency != nil {
		changes["currency"] = *update.Currency
	}
	if update.Quantity != nil {
		changes["quantity"] = *update.Quantity
	}
	if update.Pieces != nil {
		changes["pieces"] = *update.Pieces
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}

	if len(changes) == 0 {
		return nil
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DishModel{}).
		Where("id = ? AND caterer_id = ?", id, catererID).
		Updates(changes).Error
	if err != nil {
		r.logger.Errorw("failed to update dish", "id", id, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to update dish: %w", err)
	}

	return nil
}

// DeleteOwned soft-deletes an owned dish
func (r *DishRepository) DeleteOwned(ctx context.Context, id, catererID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND caterer_id = ?", id, catererID).
		Delete(&models.DishModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete dish", "id", id, "caterer_id", catererID, "error", err)
		return fmt.Errorf("failed to delete dish: %w", err)
	}

	r.logger.Infow("dish deleted", "id", id, "caterer_id", catererID)
	return nil
}

// CountReferencingItems counts package items that still reference the dish
func (r *DishRepository) CountReferencingItems(ctx context.Context, dishID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageItemModel{}).
		Where("dish_id = ?", dishID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count referencing items", "dish_id", dishID, "error", err)
		return 0, fmt.Errorf("failed to count referencing items: %w", err)
	}

	return count, nil
}

func dishToModel(entity *catalog.Dish) *models.DishModel {
	return &models.DishModel{
		ID:            entity.ID,
		CatererID:     entity.CatererID,
		CuisineTypeID: entity.CuisineTypeID,
		CategoryID:    entity.CategoryID,
		SubCategoryID: entity.SubCategoryID,
		Name:          entity.Name,
		Description:   entity.Description,
		ImageURL:      entity.ImageURL,
		Price:         entity.Price,
		Currency:      entity.Currency,
		Quantity:      entity.Quantity,
		Pieces:        entity.Pieces,
		IsActive:      entity.IsActive,
	}
}

func dishToEntity(model *models.DishModel) *catalog.Dish {
	return &catalog.Dish{
		ID:            model.ID,
		CatererID:     model.CatererID,
		CuisineTypeID: model.CuisineTypeID,
		CategoryID:    model.CategoryID,
		SubCategoryID: model.SubCategoryID,
		Name:          model.Name,
		Description:   model.Description,
		ImageURL:      model.ImageURL,
		Price:         model.Price,
		Currency:      model.Currency,
		Quantity:      model.Quantity,
		Pieces:        model.Pieces,
		IsActive:      model.IsActive,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
