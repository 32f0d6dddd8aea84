package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

func validCreateDishCommand() CreateDishCommand {
	return CreateDishCommand{
		CatererID:     7,
		CuisineTypeID: 1,
		CategoryID:    2,
		SubCategoryID: 3,
		Name:          "Lamb Kabsa",
		Description:   "Slow cooked lamb over spiced rice",
		Price:         120,
	}
}

func TestCreateDishUseCase_DefaultsApplied(t *testing.T) {
	repo := &mockDishRepo{}
	uc := NewCreateDishUseCase(repo, validMetaRepo(), logger.NewLogger())

	dish, err := uc.Execute(context.Background(), validCreateDishCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(11), dish.ID)
	assert.Equal(t, "SAR", dish.Currency)
	assert.Equal(t, 1, dish.Pieces)
	assert.True(t, dish.IsActive)
	assert.Equal(t, uint(7), dish.CatererID)
}

func TestCreateDishUseCase_ExplicitValuesKept(t *testing.T) {
	repo := &mockDishRepo{}
	uc := NewCreateDishUseCase(repo, validMetaRepo(), logger.NewLogger())

	pieces := 4
	inactive := false
	cmd := validCreateDishCommand()
	cmd.Currency = "USD"
	cmd.Pieces = &pieces
	cmd.IsActive = &inactive

	dish, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "USD", dish.Currency)
	assert.Equal(t, 4, dish.Pieces)
	assert.False(t, dish.IsActive)
}

func TestCreateDishUseCase_UnknownCuisineType(t *testing.T) {
	meta := validMetaRepo()
	meta.cuisineOK = false
	uc := NewCreateDishUseCase(&mockDishRepo{}, meta, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCreateDishCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "cuisine type")
}

func TestCreateDishUseCase_SubCategoryOfOtherCategory(t *testing.T) {
	meta := validMetaRepo()
	meta.subCategory.CategoryID = 99
	uc := NewCreateDishUseCase(&mockDishRepo{}, meta, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCreateDishCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "subcategory")
}
