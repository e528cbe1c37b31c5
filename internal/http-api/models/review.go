package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_film"`
	FilmID    int64     `json:"film_id" gorm:"not null;uniqueIndex:idx_reviews_user_film;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 10"`
	Comment   string    `json:"comment" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Film Film `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
