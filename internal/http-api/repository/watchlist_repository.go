package repository

import (
	"context"
	"fmt"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"

	"gorm.io/gorm"
)

type WatchListRepository interface {
	Add(ctx context.Context, entry *models.WatchListEntry) error
	GetEntry(ctx context.Context, userID string, filmID int64) (*models.WatchListEntry, error)
	Exists(ctx context.Context, userID string, filmID int64) (bool, error)
	UpdateStatus(ctx context.Context, userID string, filmID int64, listType string) error
	ListByUser(ctx context.Context, userID string) ([]models.WatchListEntry, error)
}

type watchListRepository struct {
	db *gorm.DB
}

func NewWatchListRepository(db *gorm.DB) WatchListRepository {
	return &watchListRepository{db: db}
}

func (r *watchListRepository) Add(ctx context.Context, entry *models.WatchListEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to list: %w", err)
	}
	return nil
}

func (r *watchListRepository) GetEntry(ctx context.Context, userID string, filmID int64) (*models.WatchListEntry, error) {
	var entry models.WatchListEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *watchListRepository) Exists(ctx context.Context, userID string, filmID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchListEntry{}).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *watchListRepository) UpdateStatus(ctx context.Context, userID string, filmID int64, listType string) error {
	result := r.db.WithContext(ctx).
		Model(&models.WatchListEntry{}).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Update("list_type", listType)
	if result.Error != nil {
		return fmt.Errorf("update list status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *watchListRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchListEntry, error) {
	var list []models.WatchListEntry
	if err := r.db.WithContext(ctx).
		Preload("Film").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list user films: %w", err)
	}
	return list, nil
}
