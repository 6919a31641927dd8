//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkspot/internal/domain/slot"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNearby(t *testing.T) {
	const (
		queryLat = 12.9716
		queryLng = 77.5946
	)

	t.Run("filters by radius and orders closest first", func(t *testing.T) {
		store := memstore.New()
		parking := queries.NewParkingQueries(store)

		nearID := seedLocation(t, store, builder.NewLocationBuilder().WithName("Near"))
		midID := seedLocation(t, store, builder.NewLocationBuilder().
			WithName("Mid").WithCoords(12.9716, 77.6200))
		seedLocation(t, store, builder.NewLocationBuilder().
			WithName("Far").WithCoords(13.0827, 80.2707))

		views, err := parking.ListNearby(context.Background(), queryLat, queryLng, 5.0)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, nearID, views[0].ID)
		assert.Equal(t, midID, views[1].ID)
		assert.Zero(t, views[0].DistanceKm)
		assert.InDelta(t, 2.76, views[1].DistanceKm, 0.1)
	})

	t.Run("includes live slot counts", func(t *testing.T) {
		store := memstore.New()
		parking := queries.NewParkingQueries(store)

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-02").AsUnavailable())

		views, err := parking.ListNearby(context.Background(), queryLat, queryLng, 5.0)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 2, views[0].TotalSlots)
		assert.Equal(t, 1, views[0].AvailableSlots)
	})

	t.Run("rejects a non-positive radius", func(t *testing.T) {
		parking := queries.NewParkingQueries(memstore.New())

		_, err := parking.ListNearby(context.Background(), queryLat, queryLng, 0)

		require.ErrorIs(t, err, queries.ErrInvalidRadius)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		parking := queries.NewParkingQueries(memstore.New())

		_, err := parking.ListNearby(context.Background(), 91.0, queryLng, 5.0)

		require.ErrorIs(t, err, queries.ErrInvalidCoords)
	})
}

func TestGetLocation(t *testing.T) {
	t.Run("returns the detail with its slots", func(t *testing.T) {
		store := memstore.New()
		parking := queries.NewParkingQueries(store)

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-02").AsUnavailable())

		detail, err := parking.GetLocation(context.Background(), locationID)

		require.NoError(t, err)
		assert.Equal(t, "Central Garage", detail.Name)
		require.Len(t, detail.Slots, 2)
		assert.Equal(t, 2, detail.TotalSlots)
		assert.Equal(t, 1, detail.AvailableSlots)
	})

	t.Run("unknown location", func(t *testing.T) {
		parking := queries.NewParkingQueries(memstore.New())

		_, err := parking.GetLocation(context.Background(), 999)

		require.ErrorIs(t, err, queries.ErrLocationNotFound)
	})
}

func TestListSlots(t *testing.T) {
	t.Run("filters by vehicle type", func(t *testing.T) {
		store := memstore.New()
		parking := queries.NewParkingQueries(store)

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		twoWheelerID := seedSlot(t, store, builder.NewSlotBuilder().
			WithLocationID(locationID).WithLabel("B-01").WithVehicleType("two-wheeler"))

		vt := slot.VehicleTwoWheeler
		views, err := parking.ListSlots(context.Background(), locationID, &vt)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, twoWheelerID, views[0].ID)
	})

	t.Run("nil filter returns every slot", func(t *testing.T) {
		store := memstore.New()
		parking := queries.NewParkingQueries(store)

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-02"))

		views, err := parking.ListSlots(context.Background(), locationID, nil)

		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("unknown location", func(t *testing.T) {
		parking := queries.NewParkingQueries(memstore.New())

		_, err := parking.ListSlots(context.Background(), 999, nil)

		require.ErrorIs(t, err, queries.ErrLocationNotFound)
	})
}
