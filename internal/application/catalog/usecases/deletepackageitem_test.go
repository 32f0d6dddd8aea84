package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

func TestDeletePackageItem_Success(t *testing.T) {
	itemRepo := &mockItemRepo{item: &catalog.PackageItem{ID: 31, CatererID: 7, DishID: 11, Quantity: 1}}
	uc := NewDeletePackageItemUseCase(itemRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), 31, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(31), itemRepo.deletedID)
}

func TestDeletePackageItem_NotOwnedIsNotFound(t *testing.T) {
	itemRepo := &mockItemRepo{item: nil}
	uc := NewDeletePackageItemUseCase(itemRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), 31, 9)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Zero(t, itemRepo.deletedID)
}
