package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type DeleteDishUseCase struct {
	dishRepo catalog.DishRepository
	txMgr    TransactionRunner
	logger   logger.Interface
}

func NewDeleteDishUseCase(
	dishRepo catalog.DishRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *DeleteDishUseCase {
	return &DeleteDishUseCase{
		dishRepo: dishRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute deletes an owned dish unless a package item still references it.
// The reference check and the delete run in one transaction so an item
// created concurrently cannot slip between them.
func (uc *DeleteDishUseCase) Execute(ctx context.Context, id, catererID uint) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		dish, err := uc.dishRepo.GetOwned(txCtx, id, catererID)
		if err != nil {
			return fmt.Errorf("failed to get dish: %w", err)
		}
		if dish == nil {
			return errors.NewNotFoundError("dish not found")
		}

		refs, err := uc.dishRepo.CountReferencingItems(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check dish references: %w", err)
		}
		if refs > 0 {
			return errors.NewValidationError("dish is referenced by package items and cannot be deleted")
		}

		if err := uc.dishRepo.DeleteOwned(txCtx, id, catererID); err != nil {
			return fmt.Errorf("failed to delete dish: %w", err)
		}

		return nil
	})
}
