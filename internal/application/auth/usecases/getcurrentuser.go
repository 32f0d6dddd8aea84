package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/user"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute re-reads the authenticated identity from storage. A token that
// outlives its account resolves to not found.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	currentUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get current user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if currentUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return currentUser, nil
}
