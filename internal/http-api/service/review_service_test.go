package service

import (
	"context"
	"testing"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForUserAndFilm(ctx context.Context, userID string, filmID int64) (bool, error) {
	args := m.Called(ctx, userID, filmID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByFilm(ctx context.Context, filmID int64) ([]models.Review, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateOwned(ctx context.Context, reviewID int64, userID string, rating int, comment string) error {
	args := m.Called(ctx, reviewID, userID, rating, comment)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteOwned(ctx context.Context, reviewID int64, userID string) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, filmID int64) (float64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) UpsertReaction(ctx context.Context, reviewID int64, userID, reaction string) error {
	args := m.Called(ctx, reviewID, userID, reaction)
	return args.Error(0)
}

// MockWatchListRepository mocks the WatchListRepository interface
type MockWatchListRepository struct {
	mock.Mock
}

func (m *MockWatchListRepository) Add(ctx context.Context, entry *models.WatchListEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchListRepository) GetEntry(ctx context.Context, userID string, filmID int64) (*models.WatchListEntry, error) {
	args := m.Called(ctx, userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchListEntry), args.Error(1)
}

func (m *MockWatchListRepository) Exists(ctx context.Context, userID string, filmID int64) (bool, error) {
	args := m.Called(ctx, userID, filmID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchListRepository) UpdateStatus(ctx context.Context, userID string, filmID int64, listType string) error {
	args := m.Called(ctx, userID, filmID, listType)
	return args.Error(0)
}

func (m *MockWatchListRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchListEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchListEntry), args.Error(1)
}

// MockFilmRepository mocks the FilmRepository interface
type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) GetAll(ctx context.Context) ([]models.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetByGenres(ctx context.Context, genreIDs []int64) ([]models.Film, error) {
	args := m.Called(ctx, genreIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetStatus(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockFilmRepository) CreateWithGenres(ctx context.Context, f *models.Film, genreNames []string) error {
	args := m.Called(ctx, f, genreNames)
	return args.Error(0)
}

func (m *MockFilmRepository) UpdateWithGenres(ctx context.Context, id int64, f *models.Film, genreNames []string) error {
	args := m.Called(ctx, id, f, genreNames)
	return args.Error(0)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newReviewServiceWithMocks() (ReviewService, *MockReviewRepository, *MockWatchListRepository, *MockFilmRepository) {
	reviewRepo := new(MockReviewRepository)
	listRepo := new(MockWatchListRepository)
	filmRepo := new(MockFilmRepository)
	return NewReviewService(reviewRepo, listRepo, filmRepo), reviewRepo, listRepo, filmRepo
}

func TestAddReview_Success(t *testing.T) {
	svc, reviewRepo, listRepo, filmRepo := newReviewServiceWithMocks()
	ctx := context.Background()

	entry := &models.WatchListEntry{UserID: "user-id", FilmID: 1, ListType: models.ListCompleted}
	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(entry, nil)
	filmRepo.On("GetStatus", ctx, int64(1)).Return(models.FilmStatusFinishedAiring, nil)
	reviewRepo.On("ExistsForUserAndFilm", ctx, "user-id", int64(1)).Return(false, nil)
	reviewRepo.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(nil)

	review, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, 8, review.Rating)
	assert.Equal(t, "great film", review.Comment)
	reviewRepo.AssertExpectations(t)
	listRepo.AssertExpectations(t)
	filmRepo.AssertExpectations(t)
}

func TestAddReview_FilmNotInList(t *testing.T) {
	svc, reviewRepo, listRepo, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(nil, gorm.ErrRecordNotFound)

	review, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.Error(t, err)
	assert.Equal(t, ErrFilmNotInList, err)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	listRepo.AssertExpectations(t)
}

func TestAddReview_PlanToWatch(t *testing.T) {
	svc, reviewRepo, listRepo, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	entry := &models.WatchListEntry{UserID: "user-id", FilmID: 1, ListType: models.ListPlanToWatch}
	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(entry, nil)

	review, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.Error(t, err)
	assert.Equal(t, ErrPlanToWatchReview, err)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddReview_FilmNotYetAired(t *testing.T) {
	svc, reviewRepo, listRepo, filmRepo := newReviewServiceWithMocks()
	ctx := context.Background()

	// not_yet_aired entries can only be plan_to_watch at creation, but the
	// list type can drift afterwards, so the air gate still has to hold here
	entry := &models.WatchListEntry{UserID: "user-id", FilmID: 1, ListType: models.ListWatching}
	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(entry, nil)
	filmRepo.On("GetStatus", ctx, int64(1)).Return(models.FilmStatusNotYetAired, nil)

	review, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.Error(t, err)
	assert.Equal(t, ErrFilmNotYetAired, err)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddReview_Duplicate(t *testing.T) {
	svc, reviewRepo, listRepo, filmRepo := newReviewServiceWithMocks()
	ctx := context.Background()

	entry := &models.WatchListEntry{UserID: "user-id", FilmID: 1, ListType: models.ListCompleted}
	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(entry, nil)
	filmRepo.On("GetStatus", ctx, int64(1)).Return(models.FilmStatusAiring, nil)
	reviewRepo.On("ExistsForUserAndFilm", ctx, "user-id", int64(1)).Return(true, nil)

	review, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.Error(t, err)
	assert.Equal(t, ErrDuplicateReview, err)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddReview_GateOrder(t *testing.T) {
	// a plan_to_watch entry on an unaired film must report the list-type
	// failure, not the air-date failure
	svc, _, listRepo, filmRepo := newReviewServiceWithMocks()
	ctx := context.Background()

	entry := &models.WatchListEntry{UserID: "user-id", FilmID: 1, ListType: models.ListPlanToWatch}
	listRepo.On("GetEntry", ctx, "user-id", int64(1)).Return(entry, nil)

	_, err := svc.AddReview(ctx, "user-id", 1, 8, "great film")

	assert.Equal(t, ErrPlanToWatchReview, err)
	filmRepo.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything)
}

func TestUpdateReview_Success(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	reviewRepo.On("UpdateOwned", ctx, int64(5), "user-id", 9, "even better on rewatch").Return(nil)

	err := svc.UpdateReview(ctx, 5, "user-id", 9, "even better on rewatch")

	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestUpdateReview_NotOwnerOrMissing(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	reviewRepo.On("UpdateOwned", ctx, int64(5), "other-user", 9, "comment").Return(gorm.ErrRecordNotFound)

	err := svc.UpdateReview(ctx, 5, "other-user", 9, "comment")

	assert.Error(t, err)
	assert.Equal(t, ErrReviewNotFound, err)
	reviewRepo.AssertExpectations(t)
}

func TestDeleteReview_Success(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	reviewRepo.On("DeleteOwned", ctx, int64(5), "user-id").Return(nil)

	err := svc.DeleteReview(ctx, 5, "user-id")

	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestDeleteReview_NotOwnerOrMissing(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	reviewRepo.On("DeleteOwned", ctx, int64(5), "other-user").Return(gorm.ErrRecordNotFound)

	err := svc.DeleteReview(ctx, 5, "other-user")

	assert.Error(t, err)
	assert.Equal(t, ErrReviewNotFound, err)
	reviewRepo.AssertExpectations(t)
}

func TestReactToReview_Success(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	review := &models.Review{ID: 5, UserID: "author", FilmID: 1, Rating: 7}
	reviewRepo.On("GetByID", ctx, int64(5)).Return(review, nil)
	reviewRepo.On("UpsertReaction", ctx, int64(5), "user-id", models.ReactionLike).Return(nil)

	err := svc.ReactToReview(ctx, 5, "user-id", models.ReactionLike)

	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestReactToReview_InvalidReaction(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	err := svc.ReactToReview(ctx, 5, "user-id", "love")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidReaction, err)
	reviewRepo.AssertNotCalled(t, "UpsertReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReactToReview_ReviewNotFound(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceWithMocks()
	ctx := context.Background()

	reviewRepo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.ReactToReview(ctx, 404, "user-id", models.ReactionDislike)

	assert.Error(t, err)
	assert.Equal(t, ErrReviewDoesNotExist, err)
	reviewRepo.AssertExpectations(t)
}
