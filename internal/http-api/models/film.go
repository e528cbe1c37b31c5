package models

import "time"

// Film catalog statuses.
const (
	FilmStatusNotYetAired    = "not_yet_aired"
	FilmStatusAiring         = "airing"
	FilmStatusFinishedAiring = "finished_airing"
)

type Film struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" gorm:"not null"`
	Synopsis      string     `json:"synopsis" gorm:"type:text"`
	Status        string     `json:"status" gorm:"not null;index"`
	TotalEpisodes int        `json:"total_episodes"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`

	// AverageRating is derived from reviews at read time, never stored.
	AverageRating float64 `json:"average_rating" gorm:"-"`

	// association
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:films_genres;constraint:OnDelete:CASCADE;"`
}

func (Film) TableName() string {
	return "films"
}

// ValidFilmStatus reports whether s is one of the catalog statuses.
func ValidFilmStatus(s string) bool {
	switch s {
	case FilmStatusNotYetAired, FilmStatusAiring, FilmStatusFinishedAiring:
		return true
	}
	return false
}
