package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/logger"
)

type ListPackageItemsUseCase struct {
	itemRepo catalog.PackageItemRepository
	logger   logger.Interface
}

func NewListPackageItemsUseCase(itemRepo catalog.PackageItemRepository, logger logger.Interface) *ListPackageItemsUseCase {
	return &ListPackageItemsUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListPackageItemsUseCase) Execute(ctx context.Context, catererID uint, filter catalog.PackageItemFilter) ([]*catalog.PackageItem, error) {
	items, err := uc.itemRepo.ListOwned(ctx, catererID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list package items: %w", err)
	}

	return items, nil
}
