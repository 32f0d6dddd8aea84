package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/auth/usecases"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type AuthHandler struct {
	signupUC         signupUseCase
	loginUC          loginUseCase
	getCurrentUserUC getCurrentUserUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	signupUC signupUseCase,
	loginUC loginUseCase,
	getCurrentUserUC getCurrentUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUC:         signupUC,
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		logger:           logger,
	}
}

type SignupRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"company_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SignupCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		CompanyName: req.CompanyName,
	}

	result, err := h.signupUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user":  result.User,
		"token": result.Token,
	}, "Account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// Logout acknowledges the request. Tokens are stateless, so the client
// discards its copy; nothing is revoked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	account, err := h.getCurrentUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", account)
}
