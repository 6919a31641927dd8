//go:build unit

package commands_test

import (
	"context"
	"math/rand"
	"testing"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReconciler(store *memstore.Store, cfg config.SensorConfig) *commands.SlotReconciler {
	clk := clock.NewMockClock(testNow)
	rng := rand.New(rand.NewSource(1))
	return commands.NewSlotReconciler(store, clk, rng, cfg)
}

func TestReconcile(t *testing.T) {
	t.Run("never touches a slot held by a booking", func(t *testing.T) {
		store := memstore.New()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		heldSlotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		freeSlotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-02"))

		bookings := commands.NewBookingCommands(store, clock.NewMockClock(testNow))
		created, err := bookings.Create(context.Background(), commands.CreateBookingParams{
			UserID:      1,
			LocationID:  locationID,
			SlotID:      heldSlotID,
			Tier:        booking.TierOneHour,
			VehicleType: slot.VehicleFourWheeler,
		})
		require.NoError(t, err)

		// Sample everything and force every sampled slot to available.
		reconciler := newReconciler(store, config.SensorConfig{SampleRate: 1.0, AvailableBias: 1.0})
		for range 50 {
			require.NoError(t, reconciler.Reconcile(context.Background()))
		}

		assert.False(t, findSlot(t, store, heldSlotID).IsAvailable(), "held slot must stay reserved")
		assert.True(t, findSlot(t, store, freeSlotID).IsAvailable())

		// Still protected once the booking is active.
		_, err = bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)
		require.NoError(t, reconciler.Reconcile(context.Background()))
		assert.False(t, findSlot(t, store, heldSlotID).IsAvailable())
	})

	t.Run("released slots rejoin the sweep", func(t *testing.T) {
		store := memstore.New()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))

		bookings := commands.NewBookingCommands(store, clock.NewMockClock(testNow))
		created, err := bookings.Create(context.Background(), commands.CreateBookingParams{
			UserID:      1,
			LocationID:  locationID,
			SlotID:      slotID,
			Tier:        booking.TierOneHour,
			VehicleType: slot.VehicleFourWheeler,
		})
		require.NoError(t, err)
		_, err = bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)
		_, err = bookings.Cancel(context.Background(), created.ID(), 1)
		require.NoError(t, err)

		// Force every free slot to unavailable; the cancelled booking no
		// longer protects the slot.
		reconciler := newReconciler(store, config.SensorConfig{SampleRate: 1.0, AvailableBias: 0.0})
		require.NoError(t, reconciler.Reconcile(context.Background()))

		assert.False(t, findSlot(t, store, slotID).IsAvailable())
	})

	t.Run("zero sample rate is a no-op", func(t *testing.T) {
		store := memstore.New()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))

		reconciler := newReconciler(store, config.SensorConfig{SampleRate: 0.0, AvailableBias: 0.0})
		for range 10 {
			require.NoError(t, reconciler.Reconcile(context.Background()))
		}

		assert.True(t, findSlot(t, store, slotID).IsAvailable())
	})
}
