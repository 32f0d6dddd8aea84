package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type DeletePackageItemUseCase struct {
	itemRepo catalog.PackageItemRepository
	logger   logger.Interface
}

func NewDeletePackageItemUseCase(itemRepo catalog.PackageItemRepository, logger logger.Interface) *DeletePackageItemUseCase {
	return &DeletePackageItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *DeletePackageItemUseCase) Execute(ctx context.Context, id, catererID uint) error {
	item, err := uc.itemRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return fmt.Errorf("failed to get package item: %w", err)
	}
	if item == nil {
		return errors.NewNotFoundError("package item not found")
	}

	if err := uc.itemRepo.DeleteOwned(ctx, id, catererID); err != nil {
		return fmt.Errorf("failed to delete package item: %w", err)
	}

	return nil
}
