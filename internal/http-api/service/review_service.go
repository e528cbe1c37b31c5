package service

import (
	"context"
	"errors"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrFilmNotInList      = errors.New("you can only review films that are in your list")
	ErrPlanToWatchReview  = errors.New("you cannot review a film with the 'plan_to_watch' status")
	ErrFilmNotYetAired    = errors.New("you cannot review a film that has not yet aired")
	ErrDuplicateReview    = errors.New("you have already reviewed this film")
	ErrReviewNotFound     = errors.New("review not found or not authorized")
	ErrInvalidReaction    = errors.New("invalid reaction. Must be 'like' or 'dislike'")
	ErrReviewDoesNotExist = errors.New("review not found")
)

type ReviewService interface {
	AddReview(ctx context.Context, userID string, filmID int64, rating int, comment string) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, userID string, rating int, comment string) error
	DeleteReview(ctx context.Context, reviewID int64, userID string) error
	GetReviewsByFilm(ctx context.Context, filmID int64) ([]models.Review, error)
	ReactToReview(ctx context.Context, reviewID int64, userID, reaction string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	listRepo   repository.WatchListRepository
	filmRepo   repository.FilmRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	listRepo repository.WatchListRepository,
	filmRepo repository.FilmRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		listRepo:   listRepo,
		filmRepo:   filmRepo,
	}
}

// AddReview inserts a review once every gate passes. Gates are checked in
// order and the first failure wins: the film must be in the caller's list,
// not as plan_to_watch, and must have aired.
func (s *reviewService) AddReview(ctx context.Context, userID string, filmID int64, rating int, comment string) (*models.Review, error) {
	entry, err := s.listRepo.GetEntry(ctx, userID, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotInList
		}
		return nil, err
	}

	if entry.ListType == models.ListPlanToWatch {
		return nil, ErrPlanToWatchReview
	}

	filmStatus, err := s.filmRepo.GetStatus(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	if filmStatus == models.FilmStatusNotYetAired {
		return nil, ErrFilmNotYetAired
	}

	exists, err := s.reviewRepo.ExistsForUserAndFilm(ctx, userID, filmID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		UserID:  userID,
		FilmID:  filmID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview touches rating/comment/updated_at only when the review
// belongs to the caller. A missing review and someone else's review are
// deliberately indistinguishable.
func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, userID string, rating int, comment string) error {
	if err := s.reviewRepo.UpdateOwned(ctx, reviewID, userID, rating, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

// DeleteReview mirrors UpdateReview's ownership contract.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64, userID string) error {
	if err := s.reviewRepo.DeleteOwned(ctx, reviewID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) GetReviewsByFilm(ctx context.Context, filmID int64) ([]models.Review, error) {
	return s.reviewRepo.GetByFilm(ctx, filmID)
}

// ReactToReview upserts the caller's like/dislike on a review.
func (s *reviewService) ReactToReview(ctx context.Context, reviewID int64, userID, reaction string) error {
	if !models.ValidReaction(reaction) {
		return ErrInvalidReaction
	}

	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewDoesNotExist
		}
		return err
	}

	return s.reviewRepo.UpsertReaction(ctx, reviewID, userID, reaction)
}
