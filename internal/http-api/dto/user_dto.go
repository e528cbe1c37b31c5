package dto

import (
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
)

// UpdateProfileDTO carries optional profile fields; at least one must be
// present, enforced in the handler.
type UpdateProfileDTO struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Bio         *string `json:"bio" binding:"omitempty,max=1000"`
}

// ProfileResponse is a user's public profile.
type ProfileResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// FromModelToProfileResponse converts a User model to ProfileResponse DTO
func FromModelToProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
	}
}
