package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tech-oh/internal/domain"
)

const (
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgInvalidTextRepresentation = "22P02"
)

// mapError converts driver errors into domain errors, prefixed with op.
// Anything that is not a recognised row-level condition counts as the store
// being unavailable, including timeouts, cancellations and lost connections.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "username") {
				return fmt.Errorf("%s: %w", op, domain.NewValidationError("username", "username_taken"))
			}
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", op, domain.NewValidationError(checkField(pgErr.ConstraintName), "invalid_value"))
		case pgInvalidTextRepresentation:
			// a malformed uuid can never match a stored row
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// checkField extracts the column from a "<table>_<column>_check" constraint name.
func checkField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_check")
	if i := strings.Index(name, "_"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return "record"
}
