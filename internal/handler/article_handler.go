package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/domain"
	"tech-oh/internal/service"
)

// ArticleHandler handles the signed-in author's article requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticleRequest represents the body of POST /api/v1/articles.
type CreateArticleRequest struct {
	Title    string  `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  string  `json:"content"`
	Category *string `json:"category"`
	Status   string  `json:"status"`
}

// UpdateArticleRequest represents the body of PATCH /api/v1/articles/:id.
// Omitted or null fields are left unchanged.
type UpdateArticleRequest struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

func (r UpdateArticleRequest) toPatch() domain.ArticlePatch {
	patch := domain.ArticlePatch{
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Category: r.Category,
	}
	if r.Status != nil {
		status := domain.ArticleStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// ListQuery represents the query parameters of GET /api/v1/articles.
type ListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

// List handles GET /api/v1/articles?q=...&status=...
func (h *ArticleHandler) List(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err.Error())
		return
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), caller.ID, domain.ArticleFilter{
		Query:  q.Query,
		Status: domain.ArticleStatus(q.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticleListResponse{Articles: toArticleResponses(articles), Count: len(articles)})
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), caller.ID, domain.ArticleFields{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Status:   domain.ArticleStatus(req.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", "/api/v1/articles/"+article.ID)
	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PATCH /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), c.Param("id"), caller.ID, req.toPatch())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("id"), caller.ID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/v1/articles/stats
func (h *ArticleHandler) Stats(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	stats, err := h.articleService.ComputeStats(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatsResponse(stats))
}
