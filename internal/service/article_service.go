package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/metrics"
	"tech-oh/internal/repository"
	"tech-oh/internal/validator"
)

// ArticleService manages the lifecycle of an author's articles.
// It holds no mutable state; every operation is a single store write or read.
type ArticleService struct {
	repo      repository.ArticleRepository
	validator *validator.Validator
	opts      options
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository, opts ...Option) *ArticleService {
	return &ArticleService{
		repo:      repo,
		validator: validator.NewValidator(),
		opts:      newOptions(opts),
	}
}

// CreateArticle validates fields and inserts a new article owned by authorID.
// Status defaults to draft.
func (s *ArticleService) CreateArticle(ctx context.Context, authorID string, fields domain.ArticleFields) (article domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("create", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return domain.Article{}, err
	}

	fields = normalizeFields(fields)
	if err := s.validator.ValidateArticleFields(&fields); err != nil {
		return domain.Article{}, err
	}

	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()

	article, err = s.repo.Insert(storeCtx, authorID, fields, s.opts.timestamp())
	if err != nil {
		logFailure(ctx, "create article failed", err, "author_id", authorID)
		return domain.Article{}, fmt.Errorf("create article: %w", err)
	}

	logger.InfoContext(ctx, "article created",
		"article_id", article.ID,
		"author_id", authorID,
		"status", article.Status,
	)
	return article, nil
}

// UpdateArticle merges patch into the article when authorID owns it.
// A missing or foreign article is ErrNotFound. An empty patch only advances UpdatedAt.
func (s *ArticleService) UpdateArticle(ctx context.Context, articleID, authorID string, patch domain.ArticlePatch) (article domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("update", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return domain.Article{}, err
	}
	if !isUUID(articleID) {
		return domain.Article{}, fmt.Errorf("update article %s: %w", articleID, domain.ErrNotFound)
	}

	patch = normalizePatch(patch)
	if err := s.validator.ValidateArticlePatch(&patch); err != nil {
		return domain.Article{}, err
	}

	current, err := s.get(ctx, domain.ArticleQuery{ID: articleID, AuthorID: authorID})
	if err != nil {
		logFailure(ctx, "update article failed", err, "article_id", articleID, "author_id", authorID)
		return domain.Article{}, fmt.Errorf("update article %s: %w", articleID, err)
	}

	if patch.Status != nil && !domain.CanTransition(current.Status, *patch.Status) {
		return domain.Article{}, domain.NewValidationError("status", "invalid_transition")
	}

	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()

	article, err = s.repo.Update(storeCtx, articleID, authorID, patch, s.opts.timestamp())
	if err != nil {
		logFailure(ctx, "update article failed", err, "article_id", articleID, "author_id", authorID)
		return domain.Article{}, fmt.Errorf("update article %s: %w", articleID, err)
	}

	log := logger.FromContext(ctx)
	if current.Status != article.Status {
		metrics.ObserveStatusTransition(current.Status, article.Status)
		log.InfoContext(ctx, "article status changed",
			"article_id", articleID,
			"author_id", authorID,
			"from", current.Status,
			"to", article.Status,
		)
	}
	log.InfoContext(ctx, "article updated", "article_id", articleID, "author_id", authorID)
	return article, nil
}

// DeleteArticle hard-deletes the article when authorID owns it.
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID, authorID string) (err error) {
	defer func() { metrics.ObserveArticleOperation("delete", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return err
	}
	if !isUUID(articleID) {
		return fmt.Errorf("delete article %s: %w", articleID, domain.ErrNotFound)
	}

	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()

	if err := s.repo.Delete(storeCtx, articleID, authorID); err != nil {
		logFailure(ctx, "delete article failed", err, "article_id", articleID, "author_id", authorID)
		return fmt.Errorf("delete article %s: %w", articleID, err)
	}

	logger.InfoContext(ctx, "article deleted", "article_id", articleID, "author_id", authorID)
	return nil
}

// GetArticle returns the article when authorID owns it.
func (s *ArticleService) GetArticle(ctx context.Context, articleID, authorID string) (article domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("get", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return domain.Article{}, err
	}
	if !isUUID(articleID) {
		return domain.Article{}, fmt.Errorf("get article %s: %w", articleID, domain.ErrNotFound)
	}

	article, err = s.get(ctx, domain.ArticleQuery{ID: articleID, AuthorID: authorID})
	if err != nil {
		logFailure(ctx, "get article failed", err, "article_id", articleID, "author_id", authorID)
		return domain.Article{}, fmt.Errorf("get article %s: %w", articleID, err)
	}
	return article, nil
}

// ListArticles returns a snapshot of the author's articles, newest first.
// The status filter runs in the store; the text query runs over the result.
func (s *ArticleService) ListArticles(ctx context.Context, authorID string, filter domain.ArticleFilter) (articles []domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("list", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid_status")
	}

	all, err := s.selectArticles(ctx, domain.ArticleQuery{
		AuthorID: authorID,
		Status:   filter.Status,
		Order:    domain.OrderCreatedDesc,
	})
	if err != nil {
		logFailure(ctx, "list articles failed", err, "author_id", authorID)
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles = make([]domain.Article, 0, len(all))
	for _, a := range all {
		if filter.Matches(a) {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// ComputeStats counts the author's articles by status and finds the most recently updated one.
func (s *ArticleService) ComputeStats(ctx context.Context, authorID string) (stats domain.ArticleStats, err error) {
	defer func() { metrics.ObserveArticleOperation("stats", err) }()

	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return domain.ArticleStats{}, err
	}

	all, err := s.selectArticles(ctx, domain.ArticleQuery{AuthorID: authorID, Order: domain.OrderCreatedDesc})
	if err != nil {
		logFailure(ctx, "compute stats failed", err, "author_id", authorID)
		return domain.ArticleStats{}, fmt.Errorf("compute stats: %w", err)
	}
	return domain.ComputeStats(all), nil
}

// ListPublished returns a page of published articles of all authors, newest first.
// A zero limit means DefaultFeedLimit; larger limits are capped.
func (s *ArticleService) ListPublished(ctx context.Context, limit, offset uint64) (articles []domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("list_published", err) }()

	if offset > math.MaxInt64 {
		return nil, fmt.Errorf("list published: %w", domain.NewValidationError("offset", "offset_out_of_range"))
	}
	if limit == 0 {
		limit = DefaultFeedLimit
	}
	limit = min(limit, s.opts.feedMaxLimit)

	articles, err = s.selectArticles(ctx, domain.ArticleQuery{
		Status: domain.StatusPublished,
		Order:  domain.OrderCreatedDesc,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logFailure(ctx, "list published failed", err)
		return nil, fmt.Errorf("list published: %w", err)
	}
	return articles, nil
}

// GetPublished returns the article if it is published, whoever wrote it.
func (s *ArticleService) GetPublished(ctx context.Context, articleID string) (article domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("get_published", err) }()

	if !isUUID(articleID) {
		return domain.Article{}, fmt.Errorf("get published %s: %w", articleID, domain.ErrNotFound)
	}

	article, err = s.get(ctx, domain.ArticleQuery{ID: articleID, Status: domain.StatusPublished})
	if err != nil {
		logFailure(ctx, "get published failed", err, "article_id", articleID)
		return domain.Article{}, fmt.Errorf("get published %s: %w", articleID, err)
	}
	return article, nil
}

func (s *ArticleService) get(ctx context.Context, q domain.ArticleQuery) (domain.Article, error) {
	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()
	return s.repo.Get(storeCtx, q)
}

func (s *ArticleService) selectArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()
	return s.repo.Select(storeCtx, q)
}

// normalizeFields trims the title, turns blank optional strings into unset and defaults the status.
func normalizeFields(f domain.ArticleFields) domain.ArticleFields {
	f.Title = strings.TrimSpace(f.Title)
	if f.Excerpt != nil {
		f.Excerpt = domain.NullableString(*f.Excerpt)
	}
	if f.Category != nil {
		f.Category = domain.NullableString(*f.Category)
	}
	if f.Status == "" {
		f.Status = domain.StatusDraft
	}
	return f
}

// normalizePatch trims supplied strings. A blank excerpt or category stays
// as "" so that it still means "clear".
func normalizePatch(p domain.ArticlePatch) domain.ArticlePatch {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if p.Excerpt != nil {
		excerpt := strings.TrimSpace(*p.Excerpt)
		p.Excerpt = &excerpt
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		p.Category = &category
	}
	return p
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// logFailure logs store failures at error level and expected outcomes at debug level.
func logFailure(ctx context.Context, msg string, err error, args ...any) {
	log := logger.FromContext(ctx)
	args = append(args, "error", err)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		log.ErrorContext(ctx, msg, args...)
		return
	}
	log.DebugContext(ctx, msg, args...)
}
