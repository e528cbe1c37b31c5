package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eggseedd/reviem-pilem-api/internal/http-api/handler"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/models"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddReview(ctx context.Context, userID string, filmID int64, rating int, comment string) (*models.Review, error) {
	args := m.Called(ctx, userID, filmID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, reviewID int64, userID string, rating int, comment string) error {
	args := m.Called(ctx, reviewID, userID, rating, comment)
	return args.Error(0)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID int64, userID string) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewService) GetReviewsByFilm(ctx context.Context, filmID int64) ([]models.Review, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) ReactToReview(ctx context.Context, reviewID int64, userID, reaction string) error {
	args := m.Called(ctx, reviewID, userID, reaction)
	return args.Error(0)
}

// --- SETUP ---

func mockAuthMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("role", "user")
		c.Next()
	}
}

func setupReviewRouter(mockService *MockReviewService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReviewHandler(mockService, nil)

	rg := r.Group("/reviews")
	rg.GET("/:filmId", h.ListByFilm)

	authed := rg.Group("", mockAuthMiddleware(userID))
	authed.POST("/:filmId", h.Create)
	authed.PATCH("/:reviewId", h.Update)
	authed.DELETE("/:reviewId", h.Delete)
	authed.POST("/reaction/:reviewId", h.React)
	return r
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestReviewHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		created := &models.Review{ID: 1, UserID: "test-user-id", FilmID: 1, Rating: 8, Comment: "great"}
		mockService.On("AddReview", mock.Anything, "test-user-id", int64(1), 8, "great").Return(created, nil).Once()

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 8, "comment": "great"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Review added successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("FilmNotInList", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("AddReview", mock.Anything, "test-user-id", int64(1), 8, "great").
			Return(nil, service.ErrFilmNotInList).Once()

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 8, "comment": "great"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("PlanToWatch", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("AddReview", mock.Anything, "test-user-id", int64(1), 8, "great").
			Return(nil, service.ErrPlanToWatchReview).Once()

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 8, "comment": "great"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "plan_to_watch")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("AddReview", mock.Anything, "test-user-id", int64(1), 8, "great").
			Return(nil, service.ErrDuplicateReview).Once()

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 8, "comment": "great"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 11, "comment": "too good"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingComment", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		w := postJSON(r, http.MethodPost, "/reviews/1", gin.H{"rating": 8})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidFilmID", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		w := postJSON(r, http.MethodPost, "/reviews/abc", gin.H{"rating": 8, "comment": "great"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("UpdateReview", mock.Anything, int64(5), "test-user-id", 9, "better").Return(nil).Once()

		w := postJSON(r, http.MethodPatch, "/reviews/5", gin.H{"rating": 9, "comment": "better"})

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotOwnerOrMissing", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "someone-else")

		mockService.On("UpdateReview", mock.Anything, int64(5), "someone-else", 9, "better").
			Return(service.ErrReviewNotFound).Once()

		w := postJSON(r, http.MethodPatch, "/reviews/5", gin.H{"rating": 9, "comment": "better"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("DeleteReview", mock.Anything, int64(5), "test-user-id").Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/reviews/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotOwnerOrMissing", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "someone-else")

		mockService.On("DeleteReview", mock.Anything, int64(5), "someone-else").
			Return(service.ErrReviewNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/reviews/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_ListByFilm(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService, "test-user-id")

	reviews := []models.Review{
		{ID: 1, UserID: "u1", FilmID: 1, Rating: 7, Comment: "good", User: models.User{Username: "alice", DisplayName: "Alice"}},
		{ID: 2, UserID: "u2", FilmID: 1, Rating: 9, Comment: "superb", User: models.User{Username: "bob", DisplayName: "Bob"}},
	}
	mockService.On("GetReviewsByFilm", mock.Anything, int64(1)).Return(reviews, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/reviews/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Len(t, body, 2)
	assert.Equal(t, "alice", body[0]["username"])
	assert.Equal(t, float64(9), body[1]["rating"])
	mockService.AssertExpectations(t)
}

func TestReviewHandler_React(t *testing.T) {
	t.Run("Like", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("ReactToReview", mock.Anything, int64(5), "test-user-id", "like").Return(nil).Once()

		w := postJSON(r, http.MethodPost, "/reviews/reaction/5", gin.H{"reaction": "like"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Review liked successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidReaction", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("ReactToReview", mock.Anything, int64(5), "test-user-id", "love").
			Return(service.ErrInvalidReaction).Once()

		w := postJSON(r, http.MethodPost, "/reviews/reaction/5", gin.H{"reaction": "love"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReviewNotFound", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, "test-user-id")

		mockService.On("ReactToReview", mock.Anything, int64(404), "test-user-id", "dislike").
			Return(service.ErrReviewDoesNotExist).Once()

		w := postJSON(r, http.MethodPost, "/reviews/reaction/404", gin.H{"reaction": "dislike"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
