package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/domain/metadata"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/logger"
)

type CreateDishCommand struct {
	CatererID     uint
	CuisineTypeID uint
	CategoryID    uint
	SubCategoryID uint
	Name          string
	Description   string
	ImageURL      string
	Price         float64
	Currency      string
	Quantity      *int
	Pieces        *int
	IsActive      *bool
}

type CreateDishUseCase struct {
	dishRepo catalog.DishRepository
	metaRepo metadata.Repository
	logger   logger.Interface
}

func NewCreateDishUseCase(
	dishRepo catalog.DishRepository,
	metaRepo metadata.Repository,
	logger logger.Interface,
) *CreateDishUseCase {
	return &CreateDishUseCase{
		dishRepo: dishRepo,
		metaRepo: metaRepo,
		logger:   logger,
	}
}

func (uc *CreateDishUseCase) Execute(ctx context.Context, cmd CreateDishCommand) (*catalog.Dish, error) {
	if err := validateDishRefs(ctx, uc.metaRepo, cmd.CuisineTypeID, cmd.CategoryID, cmd.SubCategoryID); err != nil {
		return nil, err
	}

	dish := &catalog.Dish{
		CatererID:     cmd.CatererID,
		CuisineTypeID: cmd.CuisineTypeID,
		CategoryID:    cmd.CategoryID,
		SubCategoryID: cmd.SubCategoryID,
		Name:          cmd.Name,
		Description:   cmd.Description,
		ImageURL:      cmd.ImageURL,
		Price:         cmd.Price,
		Currency:      cmd.Currency,
		Quantity:      cmd.Quantity,
		IsActive:      true,
		Pieces:        constants.DefaultPieces,
	}
	if dish.Currency == "" {
		dish.Currency = constants.DefaultCurrency
	}
	if cmd.Pieces != nil {
		dish.Pieces = *cmd.Pieces
	}
	if cmd.IsActive != nil {
		dish.IsActive = *cmd.IsActive
	}

	if err := uc.dishRepo.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	return dish, nil
}
