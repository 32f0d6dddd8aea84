package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caterly/internal/domain/metadata"
	"caterly/internal/infrastructure/persistence/models"
	"caterly/internal/shared/logger"
)

// MetadataRepository implements metadata.Repository on GORM.
// Lookup tables are reference data; all reads are sorted by name.
type MetadataRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewMetadataRepository creates a new metadata repository
func NewMetadataRepository(db *gorm.DB, logger logger.Interface) metadata.Repository {
	return &MetadataRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MetadataRepository) ListCuisineTypes(ctx context.Context) ([]*metadata.CuisineType, error) {
	var rows []*models.CuisineTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list cuisine types", "error", err)
		return nil, fmt.Errorf("failed to list cuisine types: %w", err)
	}

	result := make([]*metadata.CuisineType, 0, len(rows))
	for _, row := range rows {
		result = append(result, &metadata.CuisineType{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *MetadataRepository) ListCategories(ctx context.Context) ([]*metadata.Category, error) {
	var rows []*models.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*metadata.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, &metadata.Category{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *MetadataRepository) ListSubCategories(ctx context.Context, categoryID *uint) ([]*metadata.SubCategory, error) {
	query := r.db.WithContext(ctx).Model(&models.SubCategoryModel{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var rows []*models.SubCategoryModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subcategories", "error", err)
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	result := make([]*metadata.SubCategory, 0, len(rows))
	for _, row := range rows {
		result = append(result, &metadata.SubCategory{ID: row.ID, Name: row.Name, CategoryID: row.CategoryID})
	}
	return result, nil
}

func (r *MetadataRepository) ListFreeForms(ctx context.Context) ([]*metadata.FreeForm, error) {
	var rows []*models.FreeFormModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list free forms", "error", err)
		return nil, fmt.Errorf("failed to list free forms: %w", err)
	}

	result := make([]*metadata.FreeForm, 0, len(rows))
	for _, row := range rows {
		result = append(result, &metadata.FreeForm{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *MetadataRepository) ListPackageTypes(ctx context.Context) ([]*metadata.PackageType, error) {
	var rows []*models.PackageTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list package types", "error", err)
		return nil, fmt.Errorf("failed to list package types: %w", err)
	}

	result := make([]*metadata.PackageType, 0, len(rows))
	for _, row := range rows {
		result = append(result, &metadata.PackageType{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *MetadataRepository) CuisineTypeExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.CuisineTypeModel{}, id)
}

func (r *MetadataRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.CategoryModel{}, id)
}

func (r *MetadataRepository) GetSubCategory(ctx context.Context, id uint) (*metadata.SubCategory, error) {
	var row models.SubCategoryModel

	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subcategory", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}

	return &metadata.SubCategory{ID: row.ID, Name: row.Name, CategoryID: row.CategoryID}, nil
}

func (r *MetadataRepository) PackageTypeExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.PackageTypeModel{}, id)
}

func (r *MetadataRepository) exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check lookup existence", "id", id, "error", err)
		return false, fmt.Errorf("failed to check lookup existence: %w", err)
	}
	return count > 0, nil
}
