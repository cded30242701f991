package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tech-oh/internal/domain"
)

// memArticleStore is an in-memory ArticleRepository with the same filter
// semantics as the PostgreSQL one.
type memArticleStore struct {
	mu       sync.Mutex
	articles map[string]domain.Article
	writes   int
}

func newMemArticleStore() *memArticleStore {
	return &memArticleStore{articles: make(map[string]domain.Article)}
}

func (m *memArticleStore) Insert(_ context.Context, authorID string, f domain.ArticleFields, now time.Time) (domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++

	a := domain.Article{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		Title:     f.Title,
		Excerpt:   f.Excerpt,
		Content:   f.Content,
		Category:  f.Category,
		Status:    f.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.articles[a.ID] = a
	return a, nil
}

func (m *memArticleStore) Get(_ context.Context, q domain.ArticleQuery) (domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.articles {
		if matchesQuery(a, q) {
			return a, nil
		}
	}
	return domain.Article{}, domain.ErrNotFound
}

func (m *memArticleStore) Select(_ context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Article, 0)
	for _, a := range m.articles {
		if matchesQuery(a, q) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if q.Order == domain.OrderCreatedAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if q.Offset > 0 {
		if q.Offset >= uint64(len(out)) {
			return []domain.Article{}, nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < uint64(len(out)) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memArticleStore) Update(_ context.Context, id, authorID string, patch domain.ArticlePatch, now time.Time) (domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.articles[id]
	if !ok || a.AuthorID != authorID {
		return domain.Article{}, domain.ErrNotFound
	}
	m.writes++

	a = patch.Apply(a)
	if now.After(a.UpdatedAt) {
		a.UpdatedAt = now
	}
	m.articles[id] = a
	return a, nil
}

func (m *memArticleStore) Delete(_ context.Context, id, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.articles[id]
	if !ok || a.AuthorID != authorID {
		return domain.ErrNotFound
	}
	m.writes++
	delete(m.articles, id)
	return nil
}

func (m *memArticleStore) StreamByAuthor(ctx context.Context, authorID string, callback func(domain.Article) error) error {
	all, _ := m.Select(ctx, domain.ArticleQuery{AuthorID: authorID, Order: domain.OrderCreatedAsc})
	for _, a := range all {
		if err := callback(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *memArticleStore) snapshot(id string) (domain.Article, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.articles[id]
	return a, ok
}

func matchesQuery(a domain.Article, q domain.ArticleQuery) bool {
	if q.ID != "" && a.ID != q.ID {
		return false
	}
	if q.AuthorID != "" && a.AuthorID != q.AuthorID {
		return false
	}
	if q.Status != "" && a.Status != q.Status {
		return false
	}
	return true
}

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}
