package controllers

import (
	"net/http"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Me handles GET /users/me.
func (ctl *UserController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	user, err := ctl.users.GetCurrent(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// GetAll handles GET /users (admin).
func (ctl *UserController) GetAll(c *gin.Context) {
	users, err := ctl.users.GetAllForAdmin()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GetByID handles GET /users/:userId (admin).
func (ctl *UserController) GetByID(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	user, err := ctl.users.GetByIDForAdmin(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
