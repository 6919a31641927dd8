package commands

import (
	"context"
	"log/slog"
	"math/rand"

	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

// SlotReconciler simulates the physical sensor feed: on every tick it
// randomizes availability for a small sample of slots. The protected set
// (slots referenced by a pending or active booking) is recomputed under
// the same writer lock that booking creation takes, so the simulator can
// never clobber a reserved slot, and a slot reserved mid-tick is already
// excluded.
type SlotReconciler struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	rng   *rand.Rand
	cfg   config.SensorConfig
}

func NewSlotReconciler(uow shared.UnitOfWork, clk clock.Clock, rng *rand.Rand, cfg config.SensorConfig) *SlotReconciler {
	return &SlotReconciler{
		uow:   uow,
		clock: clk,
		rng:   rng,
		cfg:   cfg,
	}
}

// Reconcile performs one sensor sweep. Errors abort the sweep but are
// returned for logging only; the periodic loop never stops on them.
func (r *SlotReconciler) Reconcile(ctx context.Context) error {
	var sampled, flipped int

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		held, err := tx.Bookings().HeldSlotIDs(ctx)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		slots, err := tx.Slots().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		now := r.clock.Now()
		for _, s := range slots {
			if _, reserved := held[s.ID()]; reserved {
				continue
			}
			if r.rng.Float64() >= r.cfg.SampleRate {
				continue
			}
			sampled++

			available := r.rng.Float64() < r.cfg.AvailableBias
			if available == s.IsAvailable() {
				continue
			}
			if err := tx.Slots().SetAvailability(ctx, s.ID(), available, now); err != nil {
				return errs.Mark(err, ErrStoreOperationFailed)
			}
			flipped++
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("sensor sweep completed", "sampled", sampled, "flipped", flipped)
	return nil
}
