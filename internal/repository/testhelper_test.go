package repository_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tech-oh/internal/domain"
	"tech-oh/internal/repository"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB starts PostgreSQL, applies the migrations and registers cleanup on t.
// Integration tests are skipped in -short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("techoh_test"),
		postgres.WithUsername("techoh"),
		postgres.WithPassword("techoh"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")

	tdb := &TestDB{Container: pgContainer}
	t.Cleanup(func() { tdb.Cleanup(t) })

	tdb.ConnStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "get connection string")

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), tdb.ConnStr)
	require.NoError(t, err, "create migrate instance")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	_, _ = m.Close()

	tdb.Pool, err = pgxpool.New(ctx, tdb.ConnStr)
	require.NoError(t, err, "create connection pool")
	require.NoError(t, tdb.Pool.Ping(ctx), "ping database")

	return tdb
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
		tdb.Pool = nil
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
		tdb.Container = nil
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := tdb.Pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
}

// SeedArticle inserts an article for authorID through the repository.
func SeedArticle(t *testing.T, repo *repository.PostgresArticleRepository, authorID, title string, status domain.ArticleStatus, at time.Time) domain.Article {
	t.Helper()
	a, err := repo.Insert(context.Background(), authorID, domain.ArticleFields{
		Title:   title,
		Content: "<p>" + title + "</p>",
		Status:  status,
	}, at)
	require.NoError(t, err, "seed article %q", title)
	return a
}

func newAuthorID() string {
	return uuid.New().String()
}
