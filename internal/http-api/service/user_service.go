package service

import (
	"context"
	"errors"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, []models.WatchListEntry, error)
	UpdateProfile(ctx context.Context, userID string, displayName, bio *string) error
}

type userService struct {
	userRepo repository.UserRepository
	listRepo repository.WatchListRepository
}

func NewUserService(userRepo repository.UserRepository, listRepo repository.WatchListRepository) UserService {
	return &userService{
		userRepo: userRepo,
		listRepo: listRepo,
	}
}

// GetProfile returns a user's public profile together with their film list.
func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, []models.WatchListEntry, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	list, err := s.listRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, list, nil
}

// UpdateProfile changes only the provided fields.
func (s *userService) UpdateProfile(ctx context.Context, userID string, displayName, bio *string) error {
	if err := s.userRepo.UpdateProfile(userID, displayName, bio); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
