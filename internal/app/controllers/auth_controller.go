package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
)

// AuthController handles admin sign-in
type AuthController struct {
	authService AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles admin login
// @Summary Admin login
// @Description Exchanges the admin credentials for a bearer token used by the content API.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	token, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, token)
}
