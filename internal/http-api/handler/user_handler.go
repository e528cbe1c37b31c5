package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/dto"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/middleware"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	listService service.WatchListService
	authService service.AuthService
}

func NewUserHandler(
	userService service.UserService,
	listService service.WatchListService,
	authService service.AuthService,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		listService: listService,
		authService: authService,
	}
}

// RegisterRoutes registers user profile and film-list routes. Profiles
// and lists are publicly readable; mutations need the authenticated caller.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:userId", h.GetProfile)
	rg.GET("/list/:userId", h.GetUserList)

	authed := rg.Group("", middleware.AuthMiddleware(h.authService))
	authed.PATCH("", h.UpdateProfile)
	authed.POST("/list/:filmId", h.AddToList)
	authed.PATCH("/list/:filmId", h.UpdateListStatus)
}

// GetProfile returns a user's public profile together with their film list
// GET /user/:userId
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, list, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	items := make([]dto.UserListItemResponse, 0, len(list))
	for i := range list {
		items = append(items, *dto.FromModelToUserListItem(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  dto.FromModelToProfileResponse(user),
		"filmList": items,
	})
}

// UpdateProfile changes the caller's display name and/or bio
// PATCH /user
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.DisplayName == nil && req.Bio == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide at least one field to update"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.userService.UpdateProfile(ctx, userID.(string), req.DisplayName, req.Bio); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// AddToList puts a film on the caller's list
// POST /user/list/:filmId
func (h *UserHandler) AddToList(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("filmId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.ListEntryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a list_type"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.listService.AddToList(ctx, userID.(string), filmID, req.ListType); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidListType),
			errors.Is(err, service.ErrNotAiredGate):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrFilmNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Film not found"})
		case errors.Is(err, service.ErrAlreadyInList):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Film added to list successfully"})
}

// UpdateListStatus relabels an existing entry on the caller's list
// PATCH /user/list/:filmId
func (h *UserHandler) UpdateListStatus(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("filmId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.ListEntryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a list_type"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.listService.UpdateListStatus(ctx, userID.(string), filmID, req.ListType); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidListType):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrNotInList):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List status updated successfully"})
}

// GetUserList returns a user's film list on its own
// GET /user/list/:userId
func (h *UserHandler) GetUserList(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.listService.GetUserList(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	items := make([]dto.UserListItemResponse, 0, len(list))
	for i := range list {
		items = append(items, *dto.FromModelToUserListItem(&list[i]))
	}
	c.JSON(http.StatusOK, items)
}
