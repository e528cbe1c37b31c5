package dto

import (
	"time"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
)

// CreateFilmDTO for adding a film with its genres by name.
type CreateFilmDTO struct {
	Title         string     `json:"title" binding:"required"`
	Synopsis      string     `json:"synopsis" binding:"required"`
	Status        string     `json:"status" binding:"required"`
	TotalEpisodes int        `json:"total_episodes" binding:"required,min=1"`
	ReleaseDate   *time.Time `json:"release_date" binding:"required"`
	Genres        []string   `json:"genres" binding:"required,min=1"`
}

func (d *CreateFilmDTO) ToModel() models.Film {
	return models.Film{
		Title:         d.Title,
		Synopsis:      d.Synopsis,
		Status:        d.Status,
		TotalEpisodes: d.TotalEpisodes,
		ReleaseDate:   d.ReleaseDate,
	}
}

// UpdateFilmDTO mirrors the original API: the film id travels in the body.
type UpdateFilmDTO struct {
	ID            int64      `json:"id" binding:"required"`
	Title         string     `json:"title" binding:"required"`
	Synopsis      string     `json:"synopsis" binding:"required"`
	Status        string     `json:"status" binding:"required"`
	TotalEpisodes int        `json:"total_episodes" binding:"required,min=1"`
	ReleaseDate   *time.Time `json:"release_date" binding:"required"`
	Genres        []string   `json:"genres"`
}

func (d *UpdateFilmDTO) ToModel() models.Film {
	return models.Film{
		Title:         d.Title,
		Synopsis:      d.Synopsis,
		Status:        d.Status,
		TotalEpisodes: d.TotalEpisodes,
		ReleaseDate:   d.ReleaseDate,
	}
}

// FilmResponse for returning a film with genres and the derived rating.
type FilmResponse struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Synopsis      string       `json:"synopsis"`
	Status        string       `json:"status"`
	TotalEpisodes int          `json:"total_episodes"`
	ReleaseDate   *time.Time   `json:"release_date,omitempty"`
	CoverURL      *string      `json:"cover_url,omitempty"`
	AverageRating float64      `json:"average_rating"`
	Genres        []GenreEntry `json:"genres"`
}

type GenreEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromModelToFilmResponse converts a Film model to FilmResponse DTO
func FromModelToFilmResponse(f *models.Film) *FilmResponse {
	genres := make([]GenreEntry, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, GenreEntry{ID: g.ID, Name: g.Name})
	}
	return &FilmResponse{
		ID:            f.ID,
		Title:         f.Title,
		Synopsis:      f.Synopsis,
		Status:        f.Status,
		TotalEpisodes: f.TotalEpisodes,
		ReleaseDate:   f.ReleaseDate,
		CoverURL:      f.CoverURL,
		AverageRating: f.AverageRating,
		Genres:        genres,
	}
}
