package repository

import (
	"context"
	"time"

	"tech-oh/internal/domain"
)

// ArticleRepository defines methods for article data access. Every read and
// write is an equality-filtered statement; ownership is part of the filter.
type ArticleRepository interface {
	Insert(ctx context.Context, authorID string, fields domain.ArticleFields, now time.Time) (domain.Article, error)
	Get(ctx context.Context, q domain.ArticleQuery) (domain.Article, error)
	Select(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
	Update(ctx context.Context, id, authorID string, patch domain.ArticlePatch, now time.Time) (domain.Article, error)
	Delete(ctx context.Context, id, authorID string) error
	StreamByAuthor(ctx context.Context, authorID string, callback func(domain.Article) error) error
}

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, userID string, fields domain.ProfileFields, now time.Time) (domain.Profile, error)
}
