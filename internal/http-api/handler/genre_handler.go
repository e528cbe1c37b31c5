package handler

import (
	"errors"
	"net/http"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/dto"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/middleware"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService service.GenreService
	authService  service.AuthService
}

func NewGenreHandler(genreService service.GenreService, authService service.AuthService) *GenreHandler {
	return &GenreHandler{
		genreService: genreService,
		authService:  authService,
	}
}

// RegisterRoutes registers genre routes
func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/allGenres", h.List)

	authed := rg.Group("", middleware.AuthMiddleware(h.authService), middleware.RequireAdmin())
	authed.POST("/addGenre", h.Create)
	authed.PATCH("/updateGenre", h.Update)
}

// List returns all genres
// GET /genres/allGenres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genreService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, genres)
}

// Create adds a genre
// POST /genres/addGenre
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.AddGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all fields"})
		return
	}

	if _, err := h.genreService.Add(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Genre added successfully"})
}

// Update renames a genre
// PATCH /genres/updateGenre
func (h *GenreHandler) Update(c *gin.Context) {
	var req dto.UpdateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide both id and name"})
		return
	}

	if err := h.genreService.Update(req.ID, req.Name); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Genre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Genre updated successfully"})
}
