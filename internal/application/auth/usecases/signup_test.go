package usecases

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/domain/user"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type mockUserRepo struct {
	user      *user.User
	exists    bool
	getErr    error
	existsErr error
	createErr error

	created *user.User
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = 42
	m.created = u
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.user, m.getErr
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.user, m.getErr
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.exists, m.existsErr
}

type mockHasher struct {
	hash      string
	hashErr   error
	verifyErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hash, m.hashErr
}

func (m *mockHasher) Verify(password, hash string) error {
	return m.verifyErr
}

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) Generate(userID uint, email string, role authorization.UserRole) (string, error) {
	return m.token, m.err
}

func validSignupCommand() SignupCommand {
	return SignupCommand{
		FirstName:   "Sara",
		LastName:    "Alharbi",
		Phone:       "+966500000001",
		Email:       "Sara@Example.com",
		Password:    "secret123",
		Role:        "CATERER",
		CompanyName: "Sara Catering",
	}
}

func TestSignupUseCase_Success(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewSignupUseCase(repo, &mockHasher{hash: "hashed"}, &mockTokenIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validSignupCommand())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, uint(42), result.User.ID)
	assert.Equal(t, "sara@example.com", result.User.Email)
	assert.Equal(t, authorization.RoleCaterer, result.User.Role)
	require.NotNil(t, result.User.CompanyName)
	assert.Equal(t, "Sara Catering", *result.User.CompanyName)
	assert.Equal(t, "hashed", repo.created.PasswordHash)
}

func TestSignupUseCase_PasswordHashNeverSerialized(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewSignupUseCase(repo, &mockHasher{hash: "hashed"}, &mockTokenIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validSignupCommand())
	require.NoError(t, err)

	payload, err := json.Marshal(result.User)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "hashed")
	assert.NotContains(t, strings.ToLower(string(payload)), "password")
}

func TestSignupUseCase_InvalidRole(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepo{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())

	cmd := validSignupCommand()
	cmd.Role = "MANAGER"

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestSignupUseCase_CatererRequiresCompanyName(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepo{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())

	cmd := validSignupCommand()
	cmd.CompanyName = "   "

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestSignupUseCase_UserRoleWithoutCompanyName(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewSignupUseCase(repo, &mockHasher{hash: "h"}, &mockTokenIssuer{token: "tok"}, logger.NewLogger())

	cmd := validSignupCommand()
	cmd.Role = "USER"
	cmd.CompanyName = ""

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleUser, result.User.Role)
	assert.Nil(t, result.User.CompanyName)
}

func TestSignupUseCase_DuplicateEmailPrecheck(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepo{exists: true}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validSignupCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestSignupUseCase_DuplicateEmailOnInsert(t *testing.T) {
	repo := &mockUserRepo{
		createErr: stderrors.New("Error 1062: Duplicate entry 'sara@example.com' for key 'idx_users_email'"),
	}
	uc := NewSignupUseCase(repo, &mockHasher{hash: "h"}, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validSignupCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}
