package postgres

import (
	"errors"

	"parkspot/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// wrapQueryErr maps driver failures onto repository error kinds so callers
// never branch on pgx types.
func wrapQueryErr(err error, notFoundMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.NewRepoErr(infra.KindNotFound, notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "unique constraint violated", err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "query failed", err)
}
