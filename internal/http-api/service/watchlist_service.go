package service

import (
	"context"
	"errors"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidListType = errors.New("invalid list type")
	ErrFilmNotFound    = errors.New("film not found")
	ErrAlreadyInList   = errors.New("film already in list")
	ErrNotInList       = errors.New("film not found in the user's list")
	ErrNotAiredGate    = errors.New("films not yet aired can only be added as 'plan_to_watch'")
)

type WatchListService interface {
	AddToList(ctx context.Context, userID string, filmID int64, listType string) error
	UpdateListStatus(ctx context.Context, userID string, filmID int64, listType string) error
	GetUserList(ctx context.Context, userID string) ([]models.WatchListEntry, error)
}

type watchListService struct {
	listRepo repository.WatchListRepository
	filmRepo repository.FilmRepository
}

func NewWatchListService(listRepo repository.WatchListRepository, filmRepo repository.FilmRepository) WatchListService {
	return &watchListService{
		listRepo: listRepo,
		filmRepo: filmRepo,
	}
}

// AddToList creates a (user, film) entry. Films that have not aired yet can
// only be added as plan_to_watch; an existing entry is a conflict, updates
// go through UpdateListStatus.
func (s *watchListService) AddToList(ctx context.Context, userID string, filmID int64, listType string) error {
	if !models.ValidListType(listType) {
		return ErrInvalidListType
	}

	filmStatus, err := s.filmRepo.GetStatus(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFilmNotFound
		}
		return err
	}

	if filmStatus == models.FilmStatusNotYetAired && listType != models.ListPlanToWatch {
		return ErrNotAiredGate
	}

	exists, err := s.listRepo.Exists(ctx, userID, filmID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInList
	}

	entry := &models.WatchListEntry{
		UserID:   userID,
		FilmID:   filmID,
		ListType: listType,
	}
	return s.listRepo.Add(ctx, entry)
}

// UpdateListStatus relabels an existing entry. The air-date gate applies
// only at creation time, not here.
func (s *watchListService) UpdateListStatus(ctx context.Context, userID string, filmID int64, listType string) error {
	if !models.ValidListType(listType) {
		return ErrInvalidListType
	}

	if err := s.listRepo.UpdateStatus(ctx, userID, filmID, listType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInList
		}
		return err
	}
	return nil
}

func (s *watchListService) GetUserList(ctx context.Context, userID string) ([]models.WatchListEntry, error) {
	return s.listRepo.ListByUser(ctx, userID)
}
