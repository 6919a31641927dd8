package bootstrap

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/shared"

	"go.uber.org/fx"
)

var SensorModule = fx.Module("sensor",
	fx.Provide(
		NewSlotReconciler,
	),
	fx.Invoke(
		StartSlotReconciler,
	),
)

func NewSlotReconciler(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *commands.SlotReconciler {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return commands.NewSlotReconciler(uow, clk, rng, cfg.Sensor)
}

// StartSlotReconciler runs the periodic occupancy sweep for the lifetime of
// the application. Each tick samples a fraction of unreserved slots and
// flips their availability, simulating sensor reports.
func StartSlotReconciler(lc fx.Lifecycle, reconciler *commands.SlotReconciler, cfg config.Config) {
	if !cfg.Sensor.Enabled {
		slog.Info("sensor simulation disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("sensor simulation started", "interval", cfg.Sensor.Interval)
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sensor.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := reconciler.Reconcile(ctx); err != nil {
							slog.Warn("sensor sweep failed", "error", err.Error())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
