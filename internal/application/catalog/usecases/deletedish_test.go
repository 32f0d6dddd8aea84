package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

func TestDeleteDishUseCase_Success(t *testing.T) {
	repo := &mockDishRepo{dish: existingDish()}
	uc := NewDeleteDishUseCase(repo, &mockTxRunner{}, logger.NewLogger())

	err := uc.Execute(context.Background(), 11, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(11), repo.deletedID)
}

func TestDeleteDishUseCase_NotOwnedIsNotFound(t *testing.T) {
	repo := &mockDishRepo{}
	uc := NewDeleteDishUseCase(repo, &mockTxRunner{}, logger.NewLogger())

	err := uc.Execute(context.Background(), 11, 99)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Zero(t, repo.deletedID)
}

func TestDeleteDishUseCase_BlockedWhileReferenced(t *testing.T) {
	repo := &mockDishRepo{dish: existingDish(), refs: 2}
	uc := NewDeleteDishUseCase(repo, &mockTxRunner{}, logger.NewLogger())

	err := uc.Execute(context.Background(), 11, 7)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "referenced")
	assert.Zero(t, repo.deletedID)
}
