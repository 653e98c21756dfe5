package controllers

import (
	"net/http"

	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController handles profile reads and updates
type UserController struct {
	userService services.UserService
}

// NewUserController creates a UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ProfileRequest is the profile update input
type ProfileRequest struct {
	Nickname string `json:"nickname"`
	Position string `json:"position"`
	Subjects string `json:"subjects"`
}

// GetProfile returns the profile of an account, public
func (c *UserController) GetProfile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the profile, owner only
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := c.userService.UpdateProfile(currentUser(ctx), id, req.Nickname, req.Position, req.Subjects)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
