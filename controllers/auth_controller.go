package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/services"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{authService: service}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing required fields")
		return
	}

	result, err := a.authService.Register(req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "User registered successfully", result)
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	result, err := a.authService.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Login successful", result)
}

// POST /api/auth/refresh-token
func (a *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Refresh token is required")
		return
	}

	accessToken, err := a.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Token refreshed successfully", gin.H{"accessToken": accessToken})
}

// POST /api/auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.authService.Logout(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Logged out successfully", nil)
}

// POST /api/auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Old and new passwords are required")
		return
	}

	if err := a.authService.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Password changed successfully", nil)
}
