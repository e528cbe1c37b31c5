package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/dto"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/middleware"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	authService   service.AuthService
}

func NewReviewHandler(reviewService service.ReviewService, authService service.AuthService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
	}
}

// RegisterRoutes registers review routes. Reading a film's reviews is
// public; everything else needs an authenticated caller.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:filmId", h.ListByFilm)

	authed := rg.Group("", middleware.AuthMiddleware(h.authService))
	authed.POST("/:filmId", h.Create)
	authed.PATCH("/:reviewId", h.Update)
	authed.DELETE("/:reviewId", h.Delete)
	authed.POST("/reaction/:reviewId", h.React)
}

// Create adds a review for a film, gated by the caller's watch list
// POST /reviews/:filmId
func (h *ReviewHandler) Create(c *gin.Context) {
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

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide both rating and comment"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	_, err = h.reviewService.AddReview(ctx, userID.(string), filmID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFilmNotInList),
			errors.Is(err, service.ErrPlanToWatchReview),
			errors.Is(err, service.ErrFilmNotYetAired):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrFilmNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Film not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully"})
}

// Update edits the caller's own review
// PATCH /reviews/:reviewId
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide both rating and comment"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.reviewService.UpdateReview(ctx, reviewID, userID.(string), req.Rating, req.Comment); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found or not authorized to update"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// Delete removes the caller's own review
// DELETE /reviews/:reviewId
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.reviewService.DeleteReview(ctx, reviewID, userID.(string)); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found or not authorized to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// ListByFilm returns all reviews for a film with reviewer identities
// GET /reviews/:filmId
func (h *ReviewHandler) ListByFilm(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("filmId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid film ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.reviewService.GetReviewsByFilm(ctx, filmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// React upserts the caller's like/dislike on a review
// POST /reviews/reaction/:reviewId
func (h *ReviewHandler) React(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.ReactionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid reaction. Must be 'like' or 'dislike'"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.reviewService.ReactToReview(ctx, reviewID, userID.(string), req.Reaction); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReaction):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrReviewDoesNotExist):
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Review %sd successfully", req.Reaction)})
}
