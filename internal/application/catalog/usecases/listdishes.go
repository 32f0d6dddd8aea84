package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/logger"
)

type ListDishesUseCase struct {
	dishRepo catalog.DishRepository
	logger   logger.Interface
}

func NewListDishesUseCase(dishRepo catalog.DishRepository, logger logger.Interface) *ListDishesUseCase {
	return &ListDishesUseCase{
		dishRepo: dishRepo,
		logger:   logger,
	}
}

func (uc *ListDishesUseCase) Execute(ctx context.Context, catererID uint, filter catalog.DishFilter) ([]*catalog.Dish, error) {
	dishes, err := uc.dishRepo.ListOwned(ctx, catererID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	return dishes, nil
}
