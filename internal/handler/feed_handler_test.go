package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tech-oh/internal/domain"
	"tech-oh/internal/mocks"
)

func feedRouter(h *FeedHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/feed", h.List)
	router.GET("/api/v1/feed/:id", h.Get)
	return router
}

func TestFeedHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  uint64
		wantOffset uint64
	}{
		{"defaults", "", 0, 0},
		{"explicit paging", "?limit=5&offset=10", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockArticleServiceInterface(t)
			a := sampleArticle()
			a.Status = domain.StatusPublished

			mockService.EXPECT().ListPublished(mock.Anything, tt.wantLimit, tt.wantOffset).Return([]domain.Article{a}, nil)

			w := doRequest(feedRouter(NewFeedHandler(mockService)), http.MethodGet, "/api/v1/feed"+tt.query, nil)

			requireStatus(t, w, http.StatusOK)
			assert.Equal(t, 1, decode[ArticleListResponse](t, w).Count)
		})
	}

	t.Run("offset beyond bigint range is 400", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)

		w := doRequest(feedRouter(NewFeedHandler(mockService)), http.MethodGet, "/api/v1/feed?offset=18446744073709551615", nil)

		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("negative limit is 400", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)

		w := doRequest(feedRouter(NewFeedHandler(mockService)), http.MethodGet, "/api/v1/feed?limit=-1", nil)

		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestFeedHandler_Get(t *testing.T) {
	t.Run("published article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		a := sampleArticle()
		a.Status = domain.StatusPublished
		mockService.EXPECT().GetPublished(mock.Anything, a.ID).Return(a, nil)

		w := doRequest(feedRouter(NewFeedHandler(mockService)), http.MethodGet, "/api/v1/feed/"+a.ID, nil)

		requireStatus(t, w, http.StatusOK)
		assert.Equal(t, a.ID, decode[ArticleResponse](t, w).ID)
	})

	t.Run("draft is 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().GetPublished(mock.Anything, "draft-id").Return(domain.Article{}, domain.ErrNotFound)

		w := doRequest(feedRouter(NewFeedHandler(mockService)), http.MethodGet, "/api/v1/feed/draft-id", nil)

		requireStatus(t, w, http.StatusNotFound)
	})
}
