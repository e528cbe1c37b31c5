package service

import (
	"errors"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrGenreNotFound = errors.New("genre not found")

type GenreService interface {
	GetAll() ([]models.Genre, error)
	Add(name string) (*models.Genre, error)
	Update(id int64, name string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) GetAll() ([]models.Genre, error) {
	return s.genreRepo.GetAll()
}

func (s *genreService) Add(name string) (*models.Genre, error) {
	genre := &models.Genre{Name: name}
	if err := s.genreRepo.Create(genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) Update(id int64, name string) error {
	if err := s.genreRepo.Update(id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return err
	}
	return nil
}
