package repository

import (
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	GetAll() ([]models.Genre, error)
	GetByName(name string) (*models.Genre, error)
	Create(genre *models.Genre) error
	Update(id int64, name string) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Order("name asc").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) GetByName(name string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

func (r *genreRepository) Update(id int64, name string) error {
	result := r.db.Model(&models.Genre{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
