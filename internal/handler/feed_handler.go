package handler

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/service"
)

// FeedHandler serves published articles to anonymous readers.
type FeedHandler struct {
	articleService service.ArticleServiceInterface
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(articleService service.ArticleServiceInterface) *FeedHandler {
	return &FeedHandler{articleService: articleService}
}

// FeedQuery represents the paging parameters of the feed.
type FeedQuery struct {
	Limit  uint64 `form:"limit"`
	Offset uint64 `form:"offset"`
}

// List handles GET /api/v1/feed?limit=...&offset=...
func (h *FeedHandler) List(c *gin.Context) {
	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "limit and offset must be non-negative integers")
		return
	}
	if q.Limit > math.MaxInt64 || q.Offset > math.MaxInt64 {
		badRequest(c, "limit and offset must not exceed 9223372036854775807")
		return
	}

	articles, err := h.articleService.ListPublished(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticleListResponse{Articles: toArticleResponses(articles), Count: len(articles)})
}

// Get handles GET /api/v1/feed/:id
func (h *FeedHandler) Get(c *gin.Context) {
	article, err := h.articleService.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}
