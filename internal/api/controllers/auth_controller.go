package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type AuthController struct {
	accountService services.AccountService
}

func NewAuthController(accountService services.AccountService) *AuthController {
	return &AuthController{accountService: accountService}
}

// SignUp godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} response_models.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GoogleAuth godoc
// @Summary Login or register with a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.GoogleAuthRequest true "Google token payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/google [post]
func (a *AuthController) GoogleAuth(c *gin.Context) {
	var req request_models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.GoogleAuth(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) GetProfile(c *gin.Context) {
	resp, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /auth/me [put]
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
