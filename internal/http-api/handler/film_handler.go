package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/dto"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/middleware"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	filmService service.FilmService
	authService service.AuthService
}

func NewFilmHandler(filmService service.FilmService, authService service.AuthService) *FilmHandler {
	return &FilmHandler{
		filmService: filmService,
		authService: authService,
	}
}

// RegisterRoutes registers film catalog routes. Reads are public; writes
// require an authenticated admin.
func (h *FilmHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/allFilms", h.List)
	rg.GET("/filmById/:id", h.Get)
	rg.GET("/allFilmsByGenre/:genre", h.ListByGenre)
	rg.GET("/search", h.Search)

	authed := rg.Group("", middleware.AuthMiddleware(h.authService), middleware.RequireAdmin())
	authed.POST("/addFilm", h.Create)
	authed.PATCH("/updateFilm", h.Update)
	authed.DELETE("/deleteFilm/:id", h.Delete)
}

// List returns the whole catalog with genres and derived average ratings
// GET /films/allFilms
func (h *FilmHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	films, err := h.filmService.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]dto.FilmResponse, 0, len(films))
	for i := range films {
		resp = append(resp, *dto.FromModelToFilmResponse(&films[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one film
// GET /films/filmById/:id
func (h *FilmHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	film, err := h.filmService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Film not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFilmResponse(film))
}

// ListByGenre returns films matching any of the comma-separated genre ids
// GET /films/allFilmsByGenre/:genre
func (h *FilmHandler) ListByGenre(c *gin.Context) {
	raw := strings.Split(c.Param("genre"), ",")
	genreIDs := make([]int64, 0, len(raw))
	for _, part := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid genre ID"})
			return
		}
		genreIDs = append(genreIDs, id)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	films, err := h.filmService.GetByGenres(ctx, genreIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]dto.FilmResponse, 0, len(films))
	for i := range films {
		resp = append(resp, *dto.FromModelToFilmResponse(&films[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Search returns films whose title matches the query
// GET /films/search?title=
func (h *FilmHandler) Search(c *gin.Context) {
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a title to search for"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	films, err := h.filmService.SearchByTitle(ctx, title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]dto.FilmResponse, 0, len(films))
	for i := range films {
		resp = append(resp, *dto.FromModelToFilmResponse(&films[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Create adds a film with its genres in one transaction
// POST /films/addFilm
func (h *FilmHandler) Create(c *gin.Context) {
	var req dto.CreateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all fields and provide genres as an array of names"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	film := req.ToModel()
	if err := h.filmService.Create(ctx, &film, req.Genres); err != nil {
		if errors.Is(err, service.ErrInvalidFilmStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Film added successfully"})
}

// Update rewrites a film's fields and, when provided, its genre links
// PATCH /films/updateFilm
func (h *FilmHandler) Update(c *gin.Context) {
	var req dto.UpdateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all fields"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	film := req.ToModel()
	if err := h.filmService.Update(ctx, req.ID, &film, req.Genres); err != nil {
		switch {
		case errors.Is(err, service.ErrFilmNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Film not found"})
		case errors.Is(err, service.ErrInvalidFilmStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film updated successfully"})
}

// Delete removes a film and its dependent rows
// DELETE /films/deleteFilm/:id
func (h *FilmHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.filmService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Film not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film deleted successfully"})
}
