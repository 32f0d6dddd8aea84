package usecases

import (
	"context"
	"fmt"
	"strings"

	"caterly/internal/domain/user"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

// TokenIssuer issues session tokens for an authenticated identity.
type TokenIssuer interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, error)
}

type SignupCommand struct {
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Password    string
	Role        string
	CompanyName string
}

type SignupResult struct {
	User  *user.User
	Token string
}

type SignupUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("role must be one of [USER ADMIN CATERER]")
	}

	companyName := strings.TrimSpace(cmd.CompanyName)
	if role.IsCaterer() && companyName == "" {
		return nil, errors.NewValidationError("company_name is required for caterer accounts")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &user.User{
		FirstName:    strings.TrimSpace(cmd.FirstName),
		LastName:     strings.TrimSpace(cmd.LastName),
		Phone:        strings.TrimSpace(cmd.Phone),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if companyName != "" {
		newUser.CompanyName = &companyName
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// The unique index is the last line of defense against a concurrent signup
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokens.Generate(newUser.ID, newUser.Email, newUser.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token after signup", "user_id", newUser.ID, "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID, "role", newUser.Role)

	return &SignupResult{
		User:  newUser,
		Token: token,
	}, nil
}
