package controllers

import (
	"net/http"

	"hotel-reservations/dto"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /auth/register.
func (ctl *AuthController) Register(c *gin.Context) {
	var payload dto.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	user, err := ctl.auth.Register(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload dto.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	user, err := ctl.auth.Authenticate(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := utils.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(utils.TokenTTL.Seconds()),
	})
}

// Verify handles POST /auth/verify.
func (ctl *AuthController) Verify(c *gin.Context) {
	var payload dto.VerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := ctl.auth.Verify(payload); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "user verified successfully")
}

// Resend handles POST /auth/resend.
func (ctl *AuthController) Resend(c *gin.Context) {
	var payload dto.ResendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := ctl.auth.ResendVerification(payload.Email); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "verification email resent successfully")
}
