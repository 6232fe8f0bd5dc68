package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/howietz/placeshare/internal/domain/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repository code runs standalone or inside an atomic unit.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translateErr maps driver-level failures onto the repository error taxonomy.
// Malformed identifiers (path params are untrusted strings) and broken
// foreign keys both read as "the referenced row does not exist".
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repository.ErrConflict
		case "23503": // foreign_key_violation
			return repository.ErrNotFound
		case "22P02": // invalid_text_representation (not a uuid)
			return repository.ErrNotFound
		}
	}
	return err
}
