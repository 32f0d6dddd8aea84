package handlers

import (
	"context"

	"caterly/internal/application/catalog/usecases"
	"caterly/internal/domain/catalog"
)

// Use case interfaces for DishHandler

type createDishUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateDishCommand) (*catalog.Dish, error)
}

type listDishesUseCase interface {
	Execute(ctx context.Context, catererID uint, filter catalog.DishFilter) ([]*catalog.Dish, error)
}

type getDishUseCase interface {
	Execute(ctx context.Context, id, catererID uint) (*catalog.Dish, error)
}

type updateDishUseCase interface {
	Execute(ctx context.Context, id, catererID uint, update catalog.DishUpdate) (*catalog.Dish, error)
}

type deleteDishUseCase interface {
	Execute(ctx context.Context, id, catererID uint) error
}
