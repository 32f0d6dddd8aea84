package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/domain/user"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

func caterer() *user.User {
	company := "Night Feast"
	return &user.User{
		ID:           7,
		FirstName:    "Omar",
		LastName:     "Nasser",
		Email:        "omar@example.com",
		PasswordHash: "$2a$12$something",
		Role:         authorization.RoleCaterer,
		CompanyName:  &company,
	}
}

func TestLoginUseCase_Success(t *testing.T) {
	repo := &mockUserRepo{user: caterer()}
	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  OMAR@example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, uint(7), result.User.ID)
}

func TestLoginUseCase_UnknownEmail(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepo{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, constants.ErrMsgInvalidCredentials, appErr.Message)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{user: caterer()}
	hasher := &mockHasher{verifyErr: stderrors.New("mismatch")}
	uc := NewLoginUseCase(repo, hasher, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "omar@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, constants.ErrMsgInvalidCredentials, appErr.Message)
}

// The unauthorized message must be byte-identical for unknown email and
// wrong password, otherwise the endpoint leaks which emails are registered.
func TestLoginUseCase_EnumerationProof(t *testing.T) {
	unknownUC := NewLoginUseCase(&mockUserRepo{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, errUnknown := unknownUC.Execute(context.Background(), LoginCommand{Email: "a@b.c", Password: "x"})

	wrongUC := NewLoginUseCase(&mockUserRepo{user: caterer()}, &mockHasher{verifyErr: stderrors.New("no")}, &mockTokenIssuer{}, logger.NewLogger())
	_, errWrong := wrongUC.Execute(context.Background(), LoginCommand{Email: "omar@example.com", Password: "x"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}
