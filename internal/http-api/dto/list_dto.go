package dto

import (
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
)

// ListEntryDTO carries the list label for add/update requests. Enum
// membership is a business rule, checked in the service.
type ListEntryDTO struct {
	ListType string `json:"list_type" binding:"required"`
}

// UserListItemResponse is one row of a user's film list.
type UserListItemResponse struct {
	FilmID     int64     `json:"film_id"`
	Title      string    `json:"title"`
	FilmStatus string    `json:"film_status"`
	ListType   string    `json:"list_type"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToUserListItem converts a WatchListEntry (with Film preloaded)
// to a UserListItemResponse.
func FromModelToUserListItem(entry *models.WatchListEntry) *UserListItemResponse {
	item := &UserListItemResponse{
		FilmID:    entry.FilmID,
		ListType:  entry.ListType,
		UpdatedAt: entry.UpdatedAt,
	}
	if entry.Film != nil {
		item.Title = entry.Film.Title
		item.FilmStatus = entry.Film.Status
	}
	return item
}
