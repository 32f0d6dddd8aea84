package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type LinkPackageItemsCommand struct {
	PackageID uint
	ItemIDs   []uint
	CatererID uint
}

type LinkPackageItemsUseCase struct {
	packageRepo catalog.PackageRepository
	itemRepo    catalog.PackageItemRepository
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewLinkPackageItemsUseCase(
	packageRepo catalog.PackageRepository,
	itemRepo catalog.PackageItemRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *LinkPackageItemsUseCase {
	return &LinkPackageItemsUseCase{
		packageRepo: packageRepo,
		itemRepo:    itemRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute links a batch of owned items to an owned package. The operation is
// all-or-nothing: if any id is missing or owned by another caterer, nothing
// is linked. Ownership checks and the update share one transaction.
func (uc *LinkPackageItemsUseCase) Execute(ctx context.Context, cmd LinkPackageItemsCommand) error {
	if len(cmd.ItemIDs) == 0 {
		return errors.NewValidationError("item_ids must not be empty")
	}

	seen := make(map[uint]bool, len(cmd.ItemIDs))
	for _, id := range cmd.ItemIDs {
		if id == 0 {
			return errors.NewValidationError("item_ids must contain valid IDs")
		}
		if seen[id] {
			return errors.NewValidationError("item_ids must not contain duplicates")
		}
		seen[id] = true
	}

	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		pkg, err := uc.packageRepo.GetOwned(txCtx, cmd.PackageID, cmd.CatererID)
		if err != nil {
			return fmt.Errorf("failed to get package: %w", err)
		}
		if pkg == nil {
			return errors.NewNotFoundError("package not found")
		}

		owned, err := uc.itemRepo.CountOwnedByIDs(txCtx, cmd.ItemIDs, cmd.CatererID)
		if err != nil {
			return fmt.Errorf("failed to verify item ownership: %w", err)
		}
		if owned != int64(len(cmd.ItemIDs)) {
			return errors.NewNotFoundError("one or more items not found")
		}

		if err := uc.itemRepo.LinkToPackage(txCtx, cmd.ItemIDs, cmd.PackageID, cmd.CatererID); err != nil {
			return fmt.Errorf("failed to link items: %w", err)
		}

		return nil
	})
}
