package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/domain/metadata"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type UpdateDishUseCase struct {
	dishRepo catalog.DishRepository
	metaRepo metadata.Repository
	logger   logger.Interface
}

func NewUpdateDishUseCase(
	dishRepo catalog.DishRepository,
	metaRepo metadata.Repository,
	logger logger.Interface,
) *UpdateDishUseCase {
	return &UpdateDishUseCase{
		dishRepo: dishRepo,
		metaRepo: metaRepo,
		logger:   logger,
	}
}

func (uc *UpdateDishUseCase) Execute(ctx context.Context, id, catererID uint, update catalog.DishUpdate) (*catalog.Dish, error) {
	existing, err := uc.dishRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("dish not found")
	}

	// Re-validate lookup references when any of them changes. The cross-field
	// category/subcategory invariant is checked against the merged state.
	if update.CuisineTypeID != nil || update.CategoryID != nil || update.SubCategoryID != nil {
		cuisineTypeID := existing.CuisineTypeID
		categoryID := existing.CategoryID
		subCategoryID := existing.SubCategoryID

		if update.CuisineTypeID != nil {
			cuisineTypeID = *update.CuisineTypeID
		}
		if update.CategoryID != nil {
			categoryID = *update.CategoryID
		}
		if update.SubCategoryID != nil {
			subCategoryID = *update.SubCategoryID
		}

		if err := validateDishRefs(ctx, uc.metaRepo, cuisineTypeID, categoryID, subCategoryID); err != nil {
			return nil, err
		}
	}

	if err := uc.dishRepo.UpdateOwned(ctx, id, catererID, update); err != nil {
		return nil, fmt.Errorf("failed to update dish: %w", err)
	}

	updated, err := uc.dishRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload dish: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("dish not found")
	}

	return updated, nil
}
