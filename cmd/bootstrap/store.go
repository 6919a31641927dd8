package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"parkspot/internal/infra/memstore"
	"parkspot/internal/infra/postgres"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the ledger backing from STORE_DRIVER. The memory
// driver is self-contained; the postgres driver opens a pool, applies the
// schema and closes the pool on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case "memory":
		slog.Info("using in-memory store")
		return memstore.New(), nil

	case "postgres":
		pool, cleanup, err := postgres.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
			cleanup()
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})

		slog.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return postgres.NewUoW(pool), nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}
