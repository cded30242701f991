package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-oh/internal/domain"
)

const (
	mockArticleID = "a3f1e1c2-5b8d-4e2f-9c7a-1d2e3f4a5b6c"
	mockAuthorID  = "0e9d8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c5b"
)

func newMockQuerier(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func articleMockRows(status string, category *string, updated time.Time) *pgxmock.Rows {
	excerpt := "an excerpt"
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(articleColumns).
		AddRow(mockArticleID, mockAuthorID, "Hello", &excerpt, "<p>hi</p>", category, status, created, updated)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantField string
		wantCode  string
	}{
		{name: "no rows", err: pgx.ErrNoRows, target: domain.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scany: %w", pgx.ErrNoRows), target: domain.ErrNotFound},
		{name: "invalid text representation", err: &pgconn.PgError{Code: "22P02"}, target: domain.ErrNotFound},
		{
			name:      "username taken",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "profiles_username_key"},
			target:    domain.ErrValidation,
			wantField: "username",
			wantCode:  "username_taken",
		},
		{name: "other unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "profiles_pkey"}, target: domain.ErrStoreUnavailable},
		{
			name:      "check violation",
			err:       &pgconn.PgError{Code: "23514", ConstraintName: "articles_status_check"},
			target:    domain.ErrValidation,
			wantField: "status",
			wantCode:  "invalid_value",
		},
		{name: "deadline", err: context.DeadlineExceeded, target: domain.ErrStoreUnavailable},
		{name: "cancelled", err: context.Canceled, target: domain.ErrStoreUnavailable},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), target: domain.ErrStoreUnavailable},
		{name: "already mapped", err: domain.ErrNotFound, target: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError("op", tt.err)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), "op: ")

			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantCode, verr.Fields[tt.wantField])
			}
		})
	}

	assert.NoError(t, mapError("op", nil))
	assert.ErrorIs(t, mapError("op", context.DeadlineExceeded), context.DeadlineExceeded, "cause stays inspectable")
}

func TestCheckField(t *testing.T) {
	assert.Equal(t, "status", checkField("articles_status_check"))
	assert.Equal(t, "full_name", checkField("profiles_full_name_check"))
	assert.Equal(t, "record", checkField("weird"))
}

func TestArticleRepository_Insert_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresArticleRepository(mock)
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)
	category := "DevOps"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles (author_id,title,excerpt,content,category,status,created_at,updated_at)")).
		WithArgs(mockAuthorID, "Hello", pgxmock.AnyArg(), "<p>hi</p>", pgxmock.AnyArg(), "draft", now, now).
		WillReturnRows(articleMockRows("draft", &category, now))

	a, err := repo.Insert(context.Background(), mockAuthorID, domain.ArticleFields{
		Title:    "Hello",
		Content:  "<p>hi</p>",
		Category: &category,
		Status:   domain.StatusDraft,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, mockArticleID, a.ID)
	assert.Equal(t, domain.StatusDraft, a.Status)
	require.NotNil(t, a.Category)
	assert.Equal(t, "DevOps", *a.Category)
	assert.Equal(t, now, a.UpdatedAt)
}

func TestArticleRepository_Get_Mock(t *testing.T) {
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, a domain.Article)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, author_id, title, excerpt, content, category, status, created_at, updated_at FROM articles WHERE \(?author_id = \$1 AND id = \$2\)? ORDER BY created_at DESC, id DESC LIMIT 1`).
					WithArgs(mockAuthorID, mockArticleID).
					WillReturnRows(articleMockRows("published", nil, now))
			},
			check: func(t *testing.T, a domain.Article) {
				assert.Equal(t, domain.StatusPublished, a.Status)
				assert.Nil(t, a.Category)
			},
		},
		{
			name: "unknown category coerced to unset",
			setup: func(mock pgxmock.PgxPoolIface) {
				gardening := "Gardening"
				mock.ExpectQuery("SELECT").
					WithArgs(mockAuthorID, mockArticleID).
					WillReturnRows(articleMockRows("draft", &gardening, now))
			},
			check: func(t *testing.T, a domain.Article) {
				assert.Nil(t, a.Category)
			},
		},
		{
			name: "unknown status refused",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT").
					WithArgs(mockAuthorID, mockArticleID).
					WillReturnRows(articleMockRows("pending", nil, now))
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT").
					WithArgs(mockAuthorID, mockArticleID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "connection lost",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT").
					WithArgs(mockAuthorID, mockArticleID).
					WillReturnError(errors.New("conn closed"))
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockQuerier(t)
			repo := NewPostgresArticleRepository(mock)
			tt.setup(mock)

			a, err := repo.Get(context.Background(), domain.ArticleQuery{ID: mockArticleID, AuthorID: mockAuthorID})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, a)
			}
		})
	}
}

func TestArticleRepository_Select_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresArticleRepository(mock)
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles WHERE status = $1 ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 40")).
		WithArgs("published").
		WillReturnRows(articleMockRows("published", nil, now))

	got, err := repo.Select(context.Background(), domain.ArticleQuery{
		Status: domain.StatusPublished,
		Limit:  20,
		Offset: 40,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mockArticleID, got[0].ID)
}

func TestArticleRepository_Update_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresArticleRepository(mock)
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)
	archived := domain.StatusArchived
	title := "World"

	mock.ExpectQuery(`UPDATE articles SET title = \$1, status = \$2, updated_at = GREATEST\(updated_at, \$3\) WHERE \(?author_id = \$4 AND id = \$5\)? RETURNING`).
		WithArgs("World", "archived", now, mockAuthorID, mockArticleID).
		WillReturnRows(articleMockRows("archived", nil, now))

	a, err := repo.Update(context.Background(), mockArticleID, mockAuthorID, domain.ArticlePatch{
		Title:  &title,
		Status: &archived,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, a.Status)
}

func TestArticleRepository_Update_NotOwned_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresArticleRepository(mock)

	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE articles SET updated_at = GREATEST\(updated_at, \$1\) WHERE \(?author_id = \$2 AND id = \$3\)?`).
		WithArgs(now, mockAuthorID, mockArticleID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), mockArticleID, mockAuthorID, domain.ArticlePatch{}, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleRepository_Delete_Mock(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock := newMockQuerier(t)
		repo := NewPostgresArticleRepository(mock)

		mock.ExpectExec(`DELETE FROM articles WHERE \(?author_id = \$1 AND id = \$2\)?`).
			WithArgs(mockAuthorID, mockArticleID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), mockArticleID, mockAuthorID))
	})

	t.Run("nothing matched", func(t *testing.T) {
		mock := newMockQuerier(t)
		repo := NewPostgresArticleRepository(mock)

		mock.ExpectExec("DELETE FROM articles").
			WithArgs(mockAuthorID, mockArticleID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), mockArticleID, mockAuthorID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleRepository_StreamByAuthor_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresArticleRepository(mock)
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE author_id = $1 ORDER BY created_at ASC, id ASC")).
		WithArgs(mockAuthorID).
		WillReturnRows(articleMockRows("draft", nil, now))

	var got []domain.Article
	err := repo.StreamByAuthor(context.Background(), mockAuthorID, func(a domain.Article) error {
		got = append(got, a)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello", got[0].Title)
}

func TestProfileRepository_Upsert_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresProfileRepository(mock)
	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)
	bio := "hello"

	mock.ExpectQuery(`(?s)INSERT INTO profiles .*ON CONFLICT \(id\) DO UPDATE SET.*GREATEST\(profiles\.updated_at, EXCLUDED\.updated_at\)`).
		WithArgs(mockAuthorID, "ada", "Ada Lovelace", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now, now).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(mockAuthorID, "ada", "Ada Lovelace", &bio, (*string)(nil), (*string)(nil), now, now))

	p, err := repo.Upsert(context.Background(), mockAuthorID, domain.ProfileFields{
		Username: "ada",
		FullName: "Ada Lovelace",
		Bio:      &bio,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, mockAuthorID, p.UserID)
	require.NotNil(t, p.Bio)
	assert.Equal(t, "hello", *p.Bio)
	assert.Nil(t, p.Website)
}

func TestProfileRepository_Upsert_UsernameTaken_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresProfileRepository(mock)

	now := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(mockAuthorID, "ada", "Ada", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now, now).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "profiles_username_key"})

	_, err := repo.Upsert(context.Background(), mockAuthorID, domain.ProfileFields{Username: "ada", FullName: "Ada"}, now)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username_taken", verr.Fields["username"])
}

func TestProfileRepository_Get_Mock(t *testing.T) {
	mock := newMockQuerier(t)
	repo := NewPostgresProfileRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).
		WithArgs(mockAuthorID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), mockAuthorID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
