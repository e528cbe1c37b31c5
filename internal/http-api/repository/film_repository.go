package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	GetAll(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	GetByGenres(ctx context.Context, genreIDs []int64) ([]models.Film, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Film, error)
	GetStatus(ctx context.Context, id int64) (string, error)
	CreateWithGenres(ctx context.Context, f *models.Film, genreNames []string) error
	UpdateWithGenres(ctx context.Context, id int64, f *models.Film, genreNames []string) error
	Delete(ctx context.Context, id int64) error
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) GetAll(ctx context.Context) ([]models.Film, error) {
	var list []models.Film
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return list, nil
}

func (r *filmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	var f models.Film
	if err := r.db.WithContext(ctx).Preload("Genres").First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *filmRepository) GetByGenres(ctx context.Context, genreIDs []int64) ([]models.Film, error) {
	var list []models.Film
	if len(genreIDs) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Joins("JOIN films_genres fg ON fg.film_id = films.id").
		Where("fg.genre_id IN ?", genreIDs).
		Distinct().
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list films by genres: %w", err)
	}
	return list, nil
}

// SearchByTitle performs case-insensitive partial match on title and synopsis.
// Splits query into tokens and requires each token to appear in at least one
// of the fields.
func (r *filmRepository) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	var list []models.Film
	tokens := strings.Fields(title)
	if len(tokens) == 0 {
		return list, nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, t := range tokens {
		p := "%" + t + "%"
		clauses = append(clauses, "(title ILIKE ? OR COALESCE(synopsis,'') ILIKE ?)")
		args = append(args, p, p)
	}

	where := strings.Join(clauses, " AND ")
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Where(where, args...).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search films by title: %w", err)
	}
	return list, nil
}

// GetStatus fetches only the catalog status column.
func (r *filmRepository) GetStatus(ctx context.Context, id int64) (string, error) {
	var f models.Film
	if err := r.db.WithContext(ctx).Select("status").First(&f, id).Error; err != nil {
		return "", err
	}
	return f.Status, nil
}

// CreateWithGenres inserts the film, get-or-creates each named genre and
// links them, all in one transaction.
func (r *filmRepository) CreateWithGenres(ctx context.Context, f *models.Film, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return fmt.Errorf("create film: %w", err)
		}
		return linkGenres(tx, f.ID, genreNames)
	})
}

// UpdateWithGenres updates the film row and replaces its genre links in one
// transaction. A nil genreNames keeps the existing links.
func (r *filmRepository) UpdateWithGenres(ctx context.Context, id int64, f *models.Film, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Film{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":          f.Title,
			"synopsis":       f.Synopsis,
			"status":         f.Status,
			"total_episodes": f.TotalEpisodes,
			"release_date":   f.ReleaseDate,
		})
		if result.Error != nil {
			return fmt.Errorf("update film: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if genreNames == nil {
			return nil
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.FilmGenre{}).Error; err != nil {
			return fmt.Errorf("clear film genres: %w", err)
		}
		return linkGenres(tx, id, genreNames)
	})
}

// Delete removes the film and everything hanging off it in one transaction,
// so a failure mid-cascade leaves no orphaned rows.
func (r *filmRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id IN (?)",
			tx.Model(&models.Review{}).Select("id").Where("film_id = ?", id),
		).Delete(&models.ReviewReaction{}).Error; err != nil {
			return fmt.Errorf("delete film reactions: %w", err)
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete film reviews: %w", err)
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.WatchListEntry{}).Error; err != nil {
			return fmt.Errorf("delete film list entries: %w", err)
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.FilmGenre{}).Error; err != nil {
			return fmt.Errorf("delete film genre links: %w", err)
		}

		result := tx.Delete(&models.Film{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete film: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func linkGenres(tx *gorm.DB, filmID int64, genreNames []string) error {
	for _, name := range genreNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var genre models.Genre
		err := tx.Where("name = ?", name).First(&genre).Error
		if err == gorm.ErrRecordNotFound {
			genre = models.Genre{Name: name}
			err = tx.Create(&genre).Error
		}
		if err != nil {
			return fmt.Errorf("get or create genre %q: %w", name, err)
		}

		link := models.FilmGenre{FilmID: filmID, GenreID: genre.ID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("link genre %q: %w", name, err)
		}
	}
	return nil
}
