package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type CreatePackageItemCommand struct {
	CatererID uint
	DishID    uint
	PackageID *uint
	Quantity  *int
}

type CreatePackageItemUseCase struct {
	itemRepo    catalog.PackageItemRepository
	dishRepo    catalog.DishRepository
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewCreatePackageItemUseCase(
	itemRepo catalog.PackageItemRepository,
	dishRepo catalog.DishRepository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *CreatePackageItemUseCase {
	return &CreatePackageItemUseCase{
		itemRepo:    itemRepo,
		dishRepo:    dishRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute creates a package item. Without a package ID the item is a draft.
// The dish, and the package when given, must be owned by the caller.
func (uc *CreatePackageItemUseCase) Execute(ctx context.Context, cmd CreatePackageItemCommand) (*catalog.PackageItem, error) {
	dish, err := uc.dishRepo.GetOwned(ctx, cmd.DishID, cmd.CatererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}
	if dish == nil {
		return nil, errors.NewInvalidReferenceError("dish")
	}

	if cmd.PackageID != nil {
		pkg, err := uc.packageRepo.GetOwned(ctx, *cmd.PackageID, cmd.CatererID)
		if err != nil {
			return nil, fmt.Errorf("failed to get package: %w", err)
		}
		if pkg == nil {
			return nil, errors.NewInvalidReferenceError("package")
		}
	}

	item := &catalog.PackageItem{
		CatererID: cmd.CatererID,
		DishID:    cmd.DishID,
		PackageID: cmd.PackageID,
		Quantity:  1,
	}
	if cmd.Quantity != nil {
		item.Quantity = *cmd.Quantity
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create package item: %w", err)
	}

	return item, nil
}
