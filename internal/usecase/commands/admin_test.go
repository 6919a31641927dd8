//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkspot/internal/domain/slot"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/commands"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParkingFixture() (*memstore.Store, commands.ParkingCommands) {
	store := memstore.New()
	return store, commands.NewParkingCommands(store, clock.NewMockClock(testNow))
}

func TestCreateLocation(t *testing.T) {
	t.Run("stores a valid location", func(t *testing.T) {
		_, parking := newParkingFixture()

		created, err := parking.CreateLocation(context.Background(), commands.CreateLocationParams{
			Name:         "Central Garage",
			Address:      "12 Main Street",
			Latitude:     12.9716,
			Longitude:    77.5946,
			PricePerHour: 10000,
			Facilities:   []string{"covered", "cctv"},
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID())
		assert.Equal(t, "Central Garage", created.Name())
		assert.Equal(t, int64(10000), created.PricePerHour())
	})

	t.Run("rejects invalid data", func(t *testing.T) {
		_, parking := newParkingFixture()

		_, err := parking.CreateLocation(context.Background(), commands.CreateLocationParams{
			Name:         "",
			Address:      "12 Main Street",
			PricePerHour: 10000,
		})

		require.ErrorIs(t, err, commands.ErrInvalidLocation)
	})
}

func TestUpdateLocation(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		store, parking := newParkingFixture()
		id := seedLocation(t, store, builder.NewLocationBuilder())

		newPrice := int64(15000)
		updated, err := parking.UpdateLocation(context.Background(), id, commands.UpdateLocationParams{
			PricePerHour: &newPrice,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(15000), updated.PricePerHour())
		assert.Equal(t, "Central Garage", updated.Name())
		assert.Equal(t, 12.9716, updated.Latitude())
	})

	t.Run("rejects an update that breaks validation", func(t *testing.T) {
		store, parking := newParkingFixture()
		id := seedLocation(t, store, builder.NewLocationBuilder())

		badLat := 91.0
		_, err := parking.UpdateLocation(context.Background(), id, commands.UpdateLocationParams{
			Latitude: &badLat,
		})

		require.ErrorIs(t, err, commands.ErrInvalidLocation)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, parking := newParkingFixture()

		name := "New Name"
		_, err := parking.UpdateLocation(context.Background(), 999, commands.UpdateLocationParams{Name: &name})

		require.ErrorIs(t, err, commands.ErrLocationNotFound)
	})
}

func TestDeleteLocation(t *testing.T) {
	t.Run("removes the location but leaves its slots", func(t *testing.T) {
		store, parking := newParkingFixture()
		id := seedLocation(t, store, builder.NewLocationBuilder())
		slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(id))

		require.NoError(t, parking.DeleteLocation(context.Background(), id))

		remaining := findSlot(t, store, slotID)
		assert.Equal(t, id, remaining.LocationID())
	})

	t.Run("unknown location", func(t *testing.T) {
		_, parking := newParkingFixture()

		err := parking.DeleteLocation(context.Background(), 999)

		require.ErrorIs(t, err, commands.ErrLocationNotFound)
	})
}

func TestCreateSlot(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		store, parking := newParkingFixture()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())

		created, err := parking.CreateSlot(context.Background(), commands.CreateSlotParams{
			LocationID:  locationID,
			Label:       "A-01",
			VehicleType: slot.VehicleFourWheeler,
		})

		require.NoError(t, err)
		assert.True(t, created.IsAvailable())
		assert.Equal(t, locationID, created.LocationID())
	})

	t.Run("honours an explicit availability", func(t *testing.T) {
		store, parking := newParkingFixture()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())

		unavailable := false
		created, err := parking.CreateSlot(context.Background(), commands.CreateSlotParams{
			LocationID:  locationID,
			Label:       "A-02",
			VehicleType: slot.VehicleTwoWheeler,
			IsAvailable: &unavailable,
		})

		require.NoError(t, err)
		assert.False(t, created.IsAvailable())
	})

	t.Run("unknown location", func(t *testing.T) {
		_, parking := newParkingFixture()

		_, err := parking.CreateSlot(context.Background(), commands.CreateSlotParams{
			LocationID:  999,
			Label:       "A-01",
			VehicleType: slot.VehicleFourWheeler,
		})

		require.ErrorIs(t, err, commands.ErrLocationNotFound)
	})
}

func TestUpdateSlot(t *testing.T) {
	t.Run("toggles availability", func(t *testing.T) {
		store, parking := newParkingFixture()
		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))

		unavailable := false
		updated, err := parking.UpdateSlot(context.Background(), slotID, commands.UpdateSlotParams{
			IsAvailable: &unavailable,
		})

		require.NoError(t, err)
		assert.False(t, updated.IsAvailable())
		assert.Equal(t, "A-01", updated.Label())
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, parking := newParkingFixture()

		label := "B-01"
		_, err := parking.UpdateSlot(context.Background(), 999, commands.UpdateSlotParams{Label: &label})

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})
}

func TestDeleteSlot(t *testing.T) {
	t.Run("unknown slot", func(t *testing.T) {
		_, parking := newParkingFixture()

		err := parking.DeleteSlot(context.Background(), 999)

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})
}
