//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/notification"
	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/passcode"
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

func seedPendingBooking(t *testing.T, store *memstore.Store, userID, locationID, slotID int64) int64 {
	t.Helper()

	entity, err := booking.NewBooking(userID, locationID, slotID, booking.TierOneHour, slot.VehicleFourWheeler, 10000, testNow)
	require.NoError(t, err)

	var id int64
	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Bookings().Create(ctx, entity)
		return err
	})
	require.NoError(t, err)
	return id
}

func deleteSlot(t *testing.T, store *memstore.Store, id int64) {
	t.Helper()

	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Delete(ctx, id)
	})
	require.NoError(t, err)
}

func seedCode(t *testing.T, store *memstore.Store, phone, code string, issuedAt time.Time) {
	t.Helper()

	hash, err := passcode.Hash(code)
	require.NoError(t, err)

	record := otp.NewOneTimeCode(phone, hash, 10*time.Minute, issuedAt)
	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Codes().Create(ctx, record)
		return createErr
	})
	require.NoError(t, err)
}

func findSlot(t *testing.T, store *memstore.Store, id int64) *slot.Slot {
	t.Helper()

	var found *slot.Slot
	err := store.WithinRead(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Slots().FindByID(ctx, id)
		return err
	})
	require.NoError(t, err)
	return found
}

func findBooking(t *testing.T, store *memstore.Store, id int64) *booking.Booking {
	t.Helper()

	var found *booking.Booking
	err := store.WithinRead(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	require.NoError(t, err)
	return found
}

func listPayments(t *testing.T, store *memstore.Store, bookingID int64) []*payment.Payment {
	t.Helper()

	var payments []*payment.Payment
	err := store.WithinRead(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		payments, err = tx.Payments().ListByBooking(ctx, bookingID)
		return err
	})
	require.NoError(t, err)
	return payments
}

func listNotifications(t *testing.T, store *memstore.Store, userID int64) []*notification.Notification {
	t.Helper()

	var notifications []*notification.Notification
	err := store.WithinRead(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		notifications, err = tx.Notifications().ListByUser(ctx, userID)
		return err
	})
	require.NoError(t, err)
	return notifications
}
