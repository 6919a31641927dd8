//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/payment"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveByUser(t *testing.T) {
	t.Run("joins location and slot labels", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)

		locationID := seedLocation(t, store, builder.NewLocationBuilder())
		slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID).AsUnavailable())

		entity := buildBooking(t, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.LocationID = locationID
			b.SlotID = slotID
		}), booking.StatusActive)
		bookingID := seedBooking(t, store, entity)

		view, err := bookings.ActiveByUser(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
		assert.Equal(t, "Central Garage", view.LocationName)
		assert.Equal(t, "A-01", view.SlotLabel)
		assert.Equal(t, booking.StatusActive, view.Status)
	})

	t.Run("no active booking", func(t *testing.T) {
		bookings := queries.NewBookingQueries(memstore.New())

		_, err := bookings.ActiveByUser(context.Background(), 1)

		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("tolerates a deleted location", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)

		entity := buildBooking(t, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.LocationID = 999
			b.SlotID = 999
		}), booking.StatusActive)
		seedBooking(t, store, entity)

		view, err := bookings.ActiveByUser(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(999), view.LocationID)
		assert.Empty(t, view.LocationName)
		assert.Empty(t, view.SlotLabel)
	})
}

func TestHistoryByUser(t *testing.T) {
	t.Run("only completed and cancelled, newest first", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)

		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder(), booking.StatusActive))
		cancelledID := seedBooking(t, store, buildBooking(t,
			builder.NewBookingBuilder().WithNow(testNow.Add(-48*time.Hour)), booking.StatusCancelled))
		completedID := seedBooking(t, store, buildBooking(t,
			builder.NewBookingBuilder().WithNow(testNow.Add(-24*time.Hour)), booking.StatusCompleted))
		seedBooking(t, store, buildBooking(t,
			builder.NewBookingBuilder().WithUserID(2), booking.StatusCancelled))

		views, err := bookings.HistoryByUser(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, completedID, views[0].ID)
		assert.Equal(t, cancelledID, views[1].ID)
	})
}

func TestGetByID(t *testing.T) {
	seedWithCharge := func(t *testing.T, store *memstore.Store) int64 {
		t.Helper()

		entity := buildBooking(t, builder.NewBookingBuilder(), booking.StatusActive)
		bookingID := seedBooking(t, store, entity)

		charge, err := payment.NewCharge(bookingID, 1, entity.Amount(), "upi", testNow)
		require.NoError(t, err)
		err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			_, createErr := tx.Payments().Create(ctx, charge)
			return createErr
		})
		require.NoError(t, err)
		return bookingID
	}

	t.Run("owner sees the booking with payments", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)
		bookingID := seedWithCharge(t, store)

		view, payments, err := bookings.GetByID(context.Background(), bookingID, 1, false)

		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
		require.Len(t, payments, 1)
		assert.Equal(t, int64(10000), payments[0].Amount)
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)
		bookingID := seedWithCharge(t, store)

		_, _, err := bookings.GetByID(context.Background(), bookingID, 42, true)

		require.NoError(t, err)
	})

	t.Run("another user is denied", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)
		bookingID := seedWithCharge(t, store)

		_, _, err := bookings.GetByID(context.Background(), bookingID, 2, false)

		require.ErrorIs(t, err, queries.ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookings := queries.NewBookingQueries(memstore.New())

		_, _, err := bookings.GetByID(context.Background(), 999, 1, false)

		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestPaymentsByUser(t *testing.T) {
	seedPayments := func(t *testing.T, store *memstore.Store) {
		t.Helper()

		entity := buildBooking(t, builder.NewBookingBuilder(), booking.StatusActive)
		bookingID := seedBooking(t, store, entity)

		charge, err := payment.NewCharge(bookingID, 1, 10000, "upi", testNow)
		require.NoError(t, err)
		refund, err := payment.NewRefund(bookingID, 1, -7500, "upi", testNow.Add(time.Hour))
		require.NoError(t, err)

		err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, createErr := tx.Payments().Create(ctx, charge); createErr != nil {
				return createErr
			}
			_, createErr := tx.Payments().Create(ctx, refund)
			return createErr
		})
		require.NoError(t, err)
	}

	t.Run("lists charges and refunds newest first", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)
		seedPayments(t, store)

		views, err := bookings.PaymentsByUser(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, int64(-7500), views[0].Amount)
		assert.Equal(t, int64(10000), views[1].Amount)
	})

	t.Run("other users' payments stay invisible", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)
		seedPayments(t, store)

		views, err := bookings.PaymentsByUser(context.Background(), 2)

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestList(t *testing.T) {
	t.Run("optional status filter", func(t *testing.T) {
		store := memstore.New()
		bookings := queries.NewBookingQueries(store)

		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder(), booking.StatusActive))
		seedBooking(t, store, buildBooking(t, builder.NewBookingBuilder().WithUserID(2), booking.StatusCancelled))

		all, err := bookings.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		status := booking.StatusCancelled
		cancelled, err := bookings.List(context.Background(), &status)
		require.NoError(t, err)
		require.Len(t, cancelled, 1)
		assert.Equal(t, booking.StatusCancelled, cancelled[0].Status)
	})
}
