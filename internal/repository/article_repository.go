package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tech-oh/internal/domain"
	"tech-oh/internal/metrics"
)

const articlesTable = "articles"

var articleColumns = []string{
	"id", "author_id", "title", "excerpt", "content", "category", "status", "created_at", "updated_at",
}

// articleRow is the untyped shape of an articles row.
type articleRow struct {
	ID        string    `db:"id"`
	AuthorID  string    `db:"author_id"`
	Title     string    `db:"title"`
	Excerpt   *string   `db:"excerpt"`
	Content   string    `db:"content"`
	Category  *string   `db:"category"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// toDomain maps a row to an Article. A status outside the lifecycle means the
// table was written by something else and the row is refused; an unknown
// category is dropped.
func (r articleRow) toDomain() (domain.Article, error) {
	status := domain.ArticleStatus(r.Status)
	if !status.IsValid() {
		return domain.Article{}, fmt.Errorf("%w: article %s has unknown status %q", domain.ErrStoreUnavailable, r.ID, r.Status)
	}

	category := r.Category
	if category != nil && !domain.IsValidCategory(*category) {
		category = nil
	}

	return domain.Article{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		Title:     r.Title,
		Excerpt:   r.Excerpt,
		Content:   r.Content,
		Category:  category,
		Status:    status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	db Querier
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(db Querier) *PostgresArticleRepository {
	return &PostgresArticleRepository{db: db}
}

// Insert stores a new article. The id is generated by the database.
func (r *PostgresArticleRepository) Insert(ctx context.Context, authorID string, fields domain.ArticleFields, now time.Time) (domain.Article, error) {
	defer metrics.ObserveStoreCall(articlesTable, "insert", time.Now())

	query, args, err := psql.Insert(articlesTable).
		Columns("author_id", "title", "excerpt", "content", "category", "status", "created_at", "updated_at").
		Values(authorID, fields.Title, fields.Excerpt, fields.Content, fields.Category, string(fields.Status), now, now).
		Suffix("RETURNING " + strings.Join(articleColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build insert article: %w", err)
	}

	var row articleRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return domain.Article{}, mapError("insert article", err)
	}
	return row.toDomain()
}

// Get returns the single article matching q. q should filter on ID.
func (r *PostgresArticleRepository) Get(ctx context.Context, q domain.ArticleQuery) (domain.Article, error) {
	defer metrics.ObserveStoreCall(articlesTable, "get", time.Now())

	q.Limit = 1
	query, args, err := selectArticles(q).ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build get article: %w", err)
	}

	var row articleRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return domain.Article{}, mapError("get article", err)
	}
	a, err := row.toDomain()
	if err != nil {
		return domain.Article{}, mapError("get article", err)
	}
	return a, nil
}

// Select returns every article matching q in the requested order.
func (r *PostgresArticleRepository) Select(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	defer metrics.ObserveStoreCall(articlesTable, "select", time.Now())

	query, args, err := selectArticles(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select articles: %w", err)
	}

	var rows []articleRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError("select articles", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, mapError("select articles", err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// Update merges the supplied patch fields into the owned article in one statement.
// author_id is never written; updated_at only moves forward.
func (r *PostgresArticleRepository) Update(ctx context.Context, id, authorID string, patch domain.ArticlePatch, now time.Time) (domain.Article, error) {
	defer metrics.ObserveStoreCall(articlesTable, "update", time.Now())

	b := psql.Update(articlesTable)
	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.Excerpt != nil {
		b = b.Set("excerpt", domain.NullableString(*patch.Excerpt))
	}
	if patch.Content != nil {
		b = b.Set("content", *patch.Content)
	}
	if patch.Category != nil {
		b = b.Set("category", domain.NullableString(*patch.Category))
	}
	if patch.Status != nil {
		b = b.Set("status", string(*patch.Status))
	}

	query, args, err := b.
		Set("updated_at", squirrel.Expr("GREATEST(updated_at, ?)", now)).
		Where(squirrel.Eq{"id": id, "author_id": authorID}).
		Suffix("RETURNING " + strings.Join(articleColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build update article: %w", err)
	}

	var row articleRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return domain.Article{}, mapError("update article", err)
	}
	a, err := row.toDomain()
	if err != nil {
		return domain.Article{}, mapError("update article", err)
	}
	return a, nil
}

// Delete removes the owned article. A missing or foreign article is ErrNotFound.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id, authorID string) error {
	defer metrics.ObserveStoreCall(articlesTable, "delete", time.Now())

	query, args, err := psql.Delete(articlesTable).
		Where(squirrel.Eq{"id": id, "author_id": authorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete article: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapError("delete article", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError("delete article", domain.ErrNotFound)
	}
	return nil
}

// StreamByAuthor streams the author's articles oldest first with O(1) memory.
func (r *PostgresArticleRepository) StreamByAuthor(ctx context.Context, authorID string, callback func(domain.Article) error) error {
	defer metrics.ObserveStoreCall(articlesTable, "stream", time.Now())

	query, args, err := selectArticles(domain.ArticleQuery{AuthorID: authorID, Order: domain.OrderCreatedAsc}).ToSql()
	if err != nil {
		return fmt.Errorf("build stream articles: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return mapError("stream articles", err)
	}
	defer rows.Close()

	scanner := pgxscan.NewRowScanner(rows)
	for rows.Next() {
		var row articleRow
		if err := scanner.Scan(&row); err != nil {
			return mapError("scan article", err)
		}
		a, err := row.toDomain()
		if err != nil {
			return mapError("scan article", err)
		}

		if err := callback(a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return mapError("stream articles", rows.Err())
}

func selectArticles(q domain.ArticleQuery) squirrel.SelectBuilder {
	b := psql.Select(articleColumns...).From(articlesTable)

	eq := squirrel.Eq{}
	if q.ID != "" {
		eq["id"] = q.ID
	}
	if q.AuthorID != "" {
		eq["author_id"] = q.AuthorID
	}
	if q.Status != "" {
		eq["status"] = string(q.Status)
	}
	if len(eq) > 0 {
		b = b.Where(eq)
	}

	switch q.Order {
	case domain.OrderCreatedAsc:
		b = b.OrderBy("created_at ASC", "id ASC")
	case domain.OrderUpdatedDesc:
		b = b.OrderBy("updated_at DESC", "id DESC")
	default:
		b = b.OrderBy("created_at DESC", "id DESC")
	}

	if q.Limit > 0 {
		b = b.Limit(q.Limit)
	}
	if q.Offset > 0 {
		b = b.Offset(q.Offset)
	}
	return b
}
