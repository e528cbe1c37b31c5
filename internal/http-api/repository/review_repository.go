package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForUserAndFilm(ctx context.Context, userID string, filmID int64) (bool, error)
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByFilm(ctx context.Context, filmID int64) ([]models.Review, error)
	UpdateOwned(ctx context.Context, reviewID int64, userID string, rating int, comment string) error
	DeleteOwned(ctx context.Context, reviewID int64, userID string) error
	AverageRating(ctx context.Context, filmID int64) (float64, error)
	UpsertReaction(ctx context.Context, reviewID int64, userID, reaction string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ExistsForUserAndFilm(ctx context.Context, userID string, filmID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&review, reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByFilm returns all reviews for a film with the reviewing user loaded,
// in insertion order.
func (r *reviewRepository) GetByFilm(ctx context.Context, filmID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("film_id = ?", filmID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// UpdateOwned updates rating/comment only when the review belongs to userID.
// The compound WHERE keeps "absent" and "not yours" indistinguishable.
func (r *reviewRepository) UpdateOwned(ctx context.Context, reviewID int64, userID string, rating int, comment string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ? AND user_id = ?", reviewID, userID).
		Updates(map[string]interface{}{
			"rating":  rating,
			"comment": comment,
		})
	if result.Error != nil {
		return fmt.Errorf("update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned mirrors UpdateOwned's ownership semantics, and removes the
// review's reactions with it.
func (r *reviewRepository) DeleteOwned(ctx context.Context, reviewID int64, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", reviewID, userID).Delete(&models.Review{})
		if result.Error != nil {
			return fmt.Errorf("delete review: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewReaction{}).Error; err != nil {
			return fmt.Errorf("delete review reactions: %w", err)
		}
		return nil
	})
}

// AverageRating computes the mean rating for a film, 0 when it has no reviews.
func (r *reviewRepository) AverageRating(ctx context.Context, filmID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("film_id = ?", filmID).
		Scan(&avg).Error; err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// UpsertReaction overwrites an existing (review, user) reaction or inserts a
// new one. Same-value writes still touch updated_at.
func (r *reviewRepository) UpsertReaction(ctx context.Context, reviewID int64, userID, reaction string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ReviewReaction
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup reaction: %w", err)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry := models.ReviewReaction{
				ReviewID: reviewID,
				UserID:   userID,
				Reaction: reaction,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("insert reaction: %w", err)
			}
			return nil
		}

		if err := tx.Model(&existing).Update("reaction", reaction).Error; err != nil {
			return fmt.Errorf("update reaction: %w", err)
		}
		return nil
	})
}
