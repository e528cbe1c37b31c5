package dto

import (
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
)

// CreateReviewDTO for creating a review. Rating and comment are both
// required.
type CreateReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
	Comment string `json:"comment" binding:"required,max=5000"`
}

// UpdateReviewDTO for updating a review
type UpdateReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
	Comment string `json:"comment" binding:"required,max=5000"`
}

// ReactionDTO for liking or disliking a review
type ReactionDTO struct {
	Reaction string `json:"reaction" binding:"required"`
}

// ReviewResponse joins a review with its author's public identity.
type ReviewResponse struct {
	ReviewID    int64     `json:"review_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:    review.ID,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
		UserID:      review.UserID,
		Username:    review.User.Username,
		DisplayName: review.User.DisplayName,
	}
}
