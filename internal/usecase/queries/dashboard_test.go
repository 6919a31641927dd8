//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	t.Run("aggregates slots, bookings and today's revenue", func(t *testing.T) {
		store := memstore.New()
		dashboard := queries.NewDashboardQueries(store, clock.NewMockClock(testNow))

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-02"))
		seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).WithLabel("A-03").AsUnavailable())

		// Paid today: counts toward revenue.
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().
			WithNow(testNow.Add(-time.Hour)), booking.StatusActive))
		// Paid yesterday: active but outside the revenue window.
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().
			WithUserID(2).WithPricePerHour(5000).WithNow(testNow.Add(-24*time.Hour)), booking.StatusActive))
		// Unpaid: not revenue, not active.
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().
			WithUserID(3), booking.StatusPending))

		view, err := dashboard.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), view.TotalSlots)
		assert.Equal(t, int64(2), view.AvailableSlots)
		assert.Equal(t, int64(2), view.ActiveBookings)
		assert.Equal(t, int64(10000), view.TodayRevenue)
		assert.Len(t, view.RecentBookings, 3)
	})

	t.Run("revenue window opens at local midnight", func(t *testing.T) {
		store := memstore.New()
		dashboard := queries.NewDashboardQueries(store, clock.NewMockClock(testNow))

		midnight := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().
			WithNow(midnight), booking.StatusActive))
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().
			WithUserID(2).WithNow(midnight.Add(-time.Second)), booking.StatusActive))

		view, err := dashboard.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(10000), view.TodayRevenue)
	})

	t.Run("empty store", func(t *testing.T) {
		dashboard := queries.NewDashboardQueries(memstore.New(), clock.NewMockClock(testNow))

		view, err := dashboard.Stats(context.Background())

		require.NoError(t, err)
		assert.Zero(t, view.TotalSlots)
		assert.Zero(t, view.TodayRevenue)
		assert.Empty(t, view.RecentBookings)
	})
}
