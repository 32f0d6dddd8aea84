package usecases

import (
	"context"
	"fmt"
	"strings"

	"caterly/internal/domain/user"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Identical message for unknown email and wrong password so the endpoint
	// cannot be used to enumerate registered accounts
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash); err != nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	token, err := uc.tokens.Generate(existingUser.ID, existingUser.Email, existingUser.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", existingUser.ID, "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID)

	return &LoginResult{
		User:  existingUser,
		Token: token,
	}, nil
}
