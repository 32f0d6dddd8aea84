package handlers

import (
	"context"

	"caterly/internal/application/auth/usecases"
	"caterly/internal/domain/user"
)

// Use case interfaces for AuthHandler

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}
