package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrInvalidFilmStatus = errors.New("invalid film status")

type FilmService interface {
	GetAll(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	GetByGenres(ctx context.Context, genreIDs []int64) ([]models.Film, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Film, error)
	Create(ctx context.Context, f *models.Film, genreNames []string) error
	Update(ctx context.Context, id int64, f *models.Film, genreNames []string) error
	Delete(ctx context.Context, id int64) error
}

type filmService struct {
	filmRepo   repository.FilmRepository
	reviewRepo repository.ReviewRepository
}

func NewFilmService(filmRepo repository.FilmRepository, reviewRepo repository.ReviewRepository) FilmService {
	return &filmService{
		filmRepo:   filmRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *filmService) GetAll(ctx context.Context) ([]models.Film, error) {
	films, err := s.filmRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.fillAverageRatings(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *filmService) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	film, err := s.filmRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}

	avg, err := s.reviewRepo.AverageRating(ctx, id)
	if err != nil {
		return nil, err
	}
	film.AverageRating = round2(avg)
	return film, nil
}

func (s *filmService) GetByGenres(ctx context.Context, genreIDs []int64) ([]models.Film, error) {
	films, err := s.filmRepo.GetByGenres(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	if err := s.fillAverageRatings(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *filmService) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	films, err := s.filmRepo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if err := s.fillAverageRatings(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *filmService) Create(ctx context.Context, f *models.Film, genreNames []string) error {
	f.Title = strings.TrimSpace(f.Title)
	if !models.ValidFilmStatus(f.Status) {
		return ErrInvalidFilmStatus
	}
	return s.filmRepo.CreateWithGenres(ctx, f, genreNames)
}

func (s *filmService) Update(ctx context.Context, id int64, f *models.Film, genreNames []string) error {
	f.Title = strings.TrimSpace(f.Title)
	if !models.ValidFilmStatus(f.Status) {
		return ErrInvalidFilmStatus
	}
	if err := s.filmRepo.UpdateWithGenres(ctx, id, f, genreNames); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFilmNotFound
		}
		return err
	}
	return nil
}

func (s *filmService) Delete(ctx context.Context, id int64) error {
	if err := s.filmRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFilmNotFound
		}
		return err
	}
	return nil
}

// fillAverageRatings computes each film's average at read time; nothing is
// cached or stored.
func (s *filmService) fillAverageRatings(ctx context.Context, films []models.Film) error {
	for i := range films {
		avg, err := s.reviewRepo.AverageRating(ctx, films[i].ID)
		if err != nil {
			return err
		}
		films[i].AverageRating = round2(avg)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
