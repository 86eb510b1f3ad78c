package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

func (ac *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email, password (min 8 chars) and display name are required")
		return
	}

	account, err := ac.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, response_models.AccountResponse{
		ID:          account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, "Account created successfully")
}

func (ac *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := ac.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Logged in successfully")
}

// Logout runs behind the JWT middleware, which stashes the raw token
// in the context.
func (ac *AccountController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}

	if err := ac.accountService.Logout(c.Request.Context(), token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Logged out successfully")
}
