package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type GetPackageItemUseCase struct {
	itemRepo catalog.PackageItemRepository
	logger   logger.Interface
}

func NewGetPackageItemUseCase(itemRepo catalog.PackageItemRepository, logger logger.Interface) *GetPackageItemUseCase {
	return &GetPackageItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *GetPackageItemUseCase) Execute(ctx context.Context, id, catererID uint) (*catalog.PackageItem, error) {
	item, err := uc.itemRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package item: %w", err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("package item not found")
	}

	return item, nil
}
