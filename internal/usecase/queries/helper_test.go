//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func seedLocation(t *testing.T, store *memstore.Store, b *builder.LocationBuilder) int64 {
	t.Helper()

	entity, err := b.BuildDomain()
	require.NoError(t, err)

	var id int64
	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Locations().Create(ctx, entity)
		return err
	})
	require.NoError(t, err)
	return id
}

func seedSlot(t *testing.T, store *memstore.Store, b *builder.SlotBuilder) int64 {
	t.Helper()

	entity, err := b.BuildDomain()
	require.NoError(t, err)

	var id int64
	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Slots().Create(ctx, entity)
		return err
	})
	require.NoError(t, err)
	return id
}

func seedBooking(t *testing.T, store *memstore.Store, entity *booking.Booking) int64 {
	t.Helper()

	var id int64
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Bookings().Create(ctx, entity)
		return err
	})
	require.NoError(t, err)
	return id
}

// buildBooking assembles a booking in the wanted status by replaying the
// real transitions.
func buildBooking(t *testing.T, b *builder.BookingBuilder, status booking.Status) *booking.Booking {
	t.Helper()

	entity, err := b.BuildDomain()
	require.NoError(t, err)

	switch status {
	case booking.StatusPending:
	case booking.StatusActive:
		require.NoError(t, entity.MarkPaid())
	case booking.StatusCancelled:
		require.NoError(t, entity.MarkPaid())
		_, err = entity.Cancel()
		require.NoError(t, err)
	case booking.StatusCompleted:
		entity = booking.Reconstruct(
			0, entity.UserID(), entity.LocationID(), entity.SlotID(),
			entity.StartDate(), entity.EndDate(),
			entity.DurationTier(), entity.VehicleType(), entity.Amount(),
			booking.StatusCompleted, booking.PaymentPaid,
			entity.CreatedAt(),
		)
	}
	return entity
}
