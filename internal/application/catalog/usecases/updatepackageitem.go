package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type UpdatePackageItemUseCase struct {
	itemRepo catalog.PackageItemRepository
	dishRepo catalog.DishRepository
	logger   logger.Interface
}

func NewUpdatePackageItemUseCase(
	itemRepo catalog.PackageItemRepository,
	dishRepo catalog.DishRepository,
	logger logger.Interface,
) *UpdatePackageItemUseCase {
	return &UpdatePackageItemUseCase{
		itemRepo: itemRepo,
		dishRepo: dishRepo,
		logger:   logger,
	}
}

func (uc *UpdatePackageItemUseCase) Execute(ctx context.Context, id, catererID uint, update catalog.PackageItemUpdate) (*catalog.PackageItem, error) {
	existing, err := uc.itemRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package item: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("package item not found")
	}

	if update.DishID != nil {
		dish, err := uc.dishRepo.GetOwned(ctx, *update.DishID, catererID)
		if err != nil {
			return nil, fmt.Errorf("failed to get dish: %w", err)
		}
		if dish == nil {
			return nil, errors.NewInvalidReferenceError("dish")
		}
	}

	if update.Quantity != nil && *update.Quantity <= 0 {
		return nil, errors.NewValidationError("quantity must be greater than 0")
	}

	if err := uc.itemRepo.UpdateOwned(ctx, id, catererID, update); err != nil {
		return nil, fmt.Errorf("failed to update package item: %w", err)
	}

	updated, err := uc.itemRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload package item: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("package item not found")
	}

	return updated, nil
}
