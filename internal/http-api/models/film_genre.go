package models

// explicit join model so the link table can be managed inside transactions
type FilmGenre struct {
	FilmID  int64 `json:"film_id" gorm:"primaryKey;index"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey;index"`
}

func (FilmGenre) TableName() string {
	return "films_genres"
}
