package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tech-oh/internal/domain"
	"tech-oh/internal/metrics"
)

const profilesTable = "profiles"

var profileColumns = []string{
	"id", "username", "full_name", "bio", "website", "avatar_url", "created_at", "updated_at",
}

type profileRow struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	FullName  string    `db:"full_name"`
	Bio       *string   `db:"bio"`
	Website   *string   `db:"website"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() domain.Profile {
	return domain.Profile{
		UserID:    r.ID,
		Username:  r.Username,
		FullName:  r.FullName,
		Bio:       r.Bio,
		Website:   r.Website,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// PostgresProfileRepository implements ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	db Querier
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(db Querier) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// Get returns the profile of userID.
func (r *PostgresProfileRepository) Get(ctx context.Context, userID string) (domain.Profile, error) {
	defer metrics.ObserveStoreCall(profilesTable, "get", time.Now())

	query, args, err := psql.Select(profileColumns...).
		From(profilesTable).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build get profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return domain.Profile{}, mapError("get profile", err)
	}
	return row.toDomain(), nil
}

// Upsert writes the full profile record of userID, creating it on first use.
// created_at is kept from the first insert.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, userID string, fields domain.ProfileFields, now time.Time) (domain.Profile, error) {
	defer metrics.ObserveStoreCall(profilesTable, "upsert", time.Now())

	query, args, err := psql.Insert(profilesTable).
		Columns(profileColumns...).
		Values(userID, fields.Username, fields.FullName, fields.Bio, fields.Website, fields.AvatarURL, now, now).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			bio = EXCLUDED.bio,
			website = EXCLUDED.website,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = GREATEST(profiles.updated_at, EXCLUDED.updated_at)
		RETURNING ` + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build upsert profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return domain.Profile{}, mapError("upsert profile", err)
	}
	return row.toDomain(), nil
}
