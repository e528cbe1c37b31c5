package handler

import (
	"errors"
	"net/http"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/dto"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.RefreshToken)
}

// Register creates a new account
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all fields"})
		return
	}

	_, err := h.authService.Register(req.Username, req.Email, req.Password, req.DisplayName, req.Bio)
	if err != nil {
		if errors.Is(err, service.ErrAccountInUse) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email or username already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authenticates a user and returns tokens
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all fields"})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message:      "Login successful",
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: dto.UserIdentity{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
		},
	})
}

// RefreshToken exchanges a refresh token for a new access token
// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a refresh token"})
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		Token:     newAccessToken,
		TokenType: "Bearer",
	})
}
