package postgres

import (
	"context"
	_ "embed"

	"parkspot/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies the idempotent DDL. Called at startup for the
// postgres driver and by the test harness against throwaway databases.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	return nil
}
