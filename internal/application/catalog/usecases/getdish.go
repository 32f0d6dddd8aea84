package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type GetDishUseCase struct {
	dishRepo catalog.DishRepository
	logger   logger.Interface
}

func NewGetDishUseCase(dishRepo catalog.DishRepository, logger logger.Interface) *GetDishUseCase {
	return &GetDishUseCase{
		dishRepo: dishRepo,
		logger:   logger,
	}
}

func (uc *GetDishUseCase) Execute(ctx context.Context, id, catererID uint) (*catalog.Dish, error) {
	dish, err := uc.dishRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}
	if dish == nil {
		return nil, errors.NewNotFoundError("dish not found")
	}

	return dish, nil
}
