package service

import (
	"context"

	"tech-oh/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ArticleServiceInterface defines the article lifecycle operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// CreateArticle validates and stores a new article owned by authorID.
	CreateArticle(ctx context.Context, authorID string, fields domain.ArticleFields) (domain.Article, error)
	// UpdateArticle merges patch into an article owned by authorID.
	UpdateArticle(ctx context.Context, articleID, authorID string, patch domain.ArticlePatch) (domain.Article, error)
	// DeleteArticle removes an article owned by authorID.
	DeleteArticle(ctx context.Context, articleID, authorID string) error
	// GetArticle returns an article owned by authorID.
	GetArticle(ctx context.Context, articleID, authorID string) (domain.Article, error)
	// ListArticles returns the author's articles newest first.
	ListArticles(ctx context.Context, authorID string, filter domain.ArticleFilter) ([]domain.Article, error)
	// ComputeStats summarizes the author's articles.
	ComputeStats(ctx context.Context, authorID string) (domain.ArticleStats, error)
	// ListPublished returns published articles of every author newest first.
	ListPublished(ctx context.Context, limit, offset uint64) ([]domain.Article, error)
	// GetPublished returns a single published article.
	GetPublished(ctx context.Context, articleID string) (domain.Article, error)
}

// ProfileServiceInterface defines the profile operations.
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, userID string, fields domain.ProfileFields) (domain.Profile, error)
}

// DashboardServiceInterface builds the signed-in landing view.
type DashboardServiceInterface interface {
	Dashboard(ctx context.Context, identity domain.Identity) (domain.Dashboard, error)
}

// ExportServiceInterface defines the interface for export operations.
type ExportServiceInterface interface {
	// StreamArticles streams the author's articles directly to the writer.
	StreamArticles(ctx context.Context, authorID, format string, writer StreamWriter) (int, error)
}
