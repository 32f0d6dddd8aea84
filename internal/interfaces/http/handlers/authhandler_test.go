package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/application/auth/usecases"
	"caterly/internal/domain/user"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type mockSignupUC struct {
	result *usecases.SignupResult
	err    error
	gotCmd usecases.SignupCommand
}

func (m *mockSignupUC) Execute(_ context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockGetCurrentUserUC struct {
	account *user.User
	err     error
	gotID   uint
}

func (m *mockGetCurrentUserUC) Execute(_ context.Context, userID uint) (*user.User, error) {
	m.gotID = userID
	return m.account, m.err
}

func testCaterer() *user.User {
	company := "Dar Alwalima"
	return &user.User{
		ID:          7,
		FirstName:   "Sara",
		LastName:    "Alqahtani",
		Phone:       "+966501234567",
		Email:       "sara@example.com",
		Role:        authorization.RoleCaterer,
		CompanyName: &company,
	}
}

func newAuthTestEngine(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/auth/signup", h.Signup)
	engine.POST("/auth/login", h.Login)
	engine.POST("/auth/logout", h.Logout)
	engine.GET("/auth/me", h.Me)
	return engine
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	signupUC := &mockSignupUC{result: &usecases.SignupResult{User: testCaterer(), Token: "tok123"}}
	h := NewAuthHandler(signupUC, &mockLoginUC{}, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	body := `{
		"first_name": "Sara",
		"last_name": "Alqahtani",
		"phone": "+966501234567",
		"email": "sara@example.com",
		"password": "s3cret!",
		"role": "CATERER",
		"company_name": "Dar Alwalima"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Dar Alwalima", signupUC.gotCmd.CompanyName)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string    `json:"token"`
			User  user.User `json:"user"`
		} `json:"data"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "tok123", resp.Data.Token)
	assert.Equal(t, "sara@example.com", resp.Data.User.Email)
	assert.Equal(t, "Account created successfully", resp.Message)
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	signupUC := &mockSignupUC{}
	h := NewAuthHandler(signupUC, &mockLoginUC{}, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"sara@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, signupUC.gotCmd.Email, "use case must not run on invalid input")
}

func TestAuthHandler_Signup_ConflictSurfacesAsConflict(t *testing.T) {
	signupUC := &mockSignupUC{err: errors.NewConflictError("email already registered")}
	h := NewAuthHandler(signupUC, &mockLoginUC{}, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	body := `{
		"first_name": "Sara",
		"last_name": "Alqahtani",
		"phone": "+966501234567",
		"email": "sara@example.com",
		"password": "s3cret!",
		"role": "CATERER",
		"company_name": "Dar Alwalima"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUC{result: &usecases.LoginResult{User: testCaterer(), Token: "tok456"}}
	h := NewAuthHandler(&mockSignupUC{}, loginUC, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"sara@example.com","password":"s3cret!"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tok456")
	assert.Contains(t, w.Body.String(), "Login successful")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	loginUC := &mockLoginUC{err: errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)}
	h := NewAuthHandler(&mockSignupUC{}, loginUC, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"sara@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInvalidCredentials)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&mockSignupUC{}, &mockLoginUC{}, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}

func TestAuthHandler_Me_Success(t *testing.T) {
	getUC := &mockGetCurrentUserUC{account: testCaterer()}
	h := NewAuthHandler(&mockSignupUC{}, &mockLoginUC{}, getUC, logger.NewLogger())

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/auth/me", func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(7))
	}, h.Me)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), getUC.gotID)
	assert.Contains(t, w.Body.String(), "sara@example.com")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockSignupUC{}, &mockLoginUC{}, &mockGetCurrentUserUC{}, logger.NewLogger())
	engine := newAuthTestEngine(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
