//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/commands"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	store      *memstore.Store
	clock      *clock.MockClock
	bookings   commands.BookingCommands
	locationID int64
	slotID     int64
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(testNow)

	locationID := seedLocation(t, store, builder.NewLocationBuilder())
	slotID := seedSlot(t, store, builder.NewSlotBuilder().WithLocationID(locationID))

	return &bookingFixture{
		store:      store,
		clock:      clk,
		bookings:   commands.NewBookingCommands(store, clk),
		locationID: locationID,
		slotID:     slotID,
	}
}

func (f *bookingFixture) createParams(userID int64) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		UserID:      userID,
		LocationID:  f.locationID,
		SlotID:      f.slotID,
		Tier:        booking.TierOneHour,
		VehicleType: slot.VehicleFourWheeler,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("opens pending and takes the slot", func(t *testing.T) {
		f := newBookingFixture(t)

		created, err := f.bookings.Create(context.Background(), f.createParams(1))

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, booking.PaymentPending, created.PaymentStatus())
		assert.Equal(t, int64(10000), created.Amount())
		assert.Equal(t, testNow.Add(booking.Term), created.EndDate())

		assert.False(t, findSlot(t, f.store, f.slotID).IsAvailable())

		notifications := listNotifications(t, f.store, 1)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Booking Created", notifications[0].Title())
	})

	t.Run("invalid tier", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(1)
		params.Tier = booking.DurationTier(45)

		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrInvalidDurationTier)
	})

	t.Run("invalid vehicle type", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(1)
		params.VehicleType = slot.VehicleType("truck")

		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrInvalidVehicleType)
	})

	t.Run("unknown location", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(1)
		params.LocationID = 999

		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrLocationNotFound)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(1)
		params.SlotID = 999

		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("slot of another location", func(t *testing.T) {
		f := newBookingFixture(t)
		otherLocation := seedLocation(t, f.store, builder.NewLocationBuilder().WithName("East Lot"))
		straySlotID := seedSlot(t, f.store, builder.NewSlotBuilder().WithLocationID(otherLocation).WithLabel("B-01"))

		params := f.createParams(1)
		params.SlotID = straySlotID

		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrSlotLocationMismatch)
	})

	t.Run("slot already taken", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		_, err = f.bookings.Create(context.Background(), f.createParams(2))
		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
	})

	t.Run("one active booking per user", func(t *testing.T) {
		f := newBookingFixture(t)
		secondSlot := seedSlot(t, f.store, builder.NewSlotBuilder().WithLocationID(f.locationID).WithLabel("A-02"))

		_, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		params := f.createParams(1)
		params.SlotID = secondSlot
		_, err = f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrActiveBookingExists)
	})

	t.Run("pending booking blocks a new one", func(t *testing.T) {
		f := newBookingFixture(t)
		secondSlot := seedSlot(t, f.store, builder.NewSlotBuilder().WithLocationID(f.locationID).WithLabel("A-02"))
		seedPendingBooking(t, f.store, 1, f.locationID, f.slotID)

		params := f.createParams(1)
		params.SlotID = secondSlot
		_, err := f.bookings.Create(context.Background(), params)

		require.ErrorIs(t, err, commands.ErrActiveBookingExists)
		assert.True(t, findSlot(t, f.store, secondSlot).IsAvailable())
	})

	t.Run("failed create leaves no trace", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(1)
		params.LocationID = 999

		_, err := f.bookings.Create(context.Background(), params)
		require.Error(t, err)

		assert.True(t, findSlot(t, f.store, f.slotID).IsAvailable())
		assert.Empty(t, listNotifications(t, f.store, 1))
	})
}

func TestPayBooking(t *testing.T) {
	t.Run("records the charge and activates", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		paid, err := f.bookings.Pay(context.Background(), created.ID(), 1, "upi")

		require.NoError(t, err)
		assert.Equal(t, booking.StatusActive, paid.Status())
		assert.Equal(t, booking.PaymentPaid, paid.PaymentStatus())

		payments := listPayments(t, f.store, created.ID())
		require.Len(t, payments, 1)
		assert.Equal(t, int64(10000), payments[0].Amount())
		assert.Equal(t, "upi", payments[0].Method())
		assert.Equal(t, payment.StatusSuccess, payments[0].Status())
		assert.NotEmpty(t, payments[0].TransactionRef())
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.bookings.Pay(context.Background(), 999, 1, "upi")

		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("only the owner can pay", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		_, err = f.bookings.Pay(context.Background(), created.ID(), 2, "upi")

		require.ErrorIs(t, err, commands.ErrNotBookingOwner)
	})

	t.Run("paying never yields a second active booking", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		secondSlot := seedSlot(t, f.store, builder.NewSlotBuilder().WithLocationID(f.locationID).WithLabel("A-02"))
		stale := seedPendingBooking(t, f.store, 1, f.locationID, secondSlot)

		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		_, err = f.bookings.Pay(context.Background(), stale, 1, "upi")
		require.ErrorIs(t, err, commands.ErrActiveBookingExists)

		assert.Equal(t, booking.StatusPending, findBooking(t, f.store, stale).Status())
		require.Empty(t, listPayments(t, f.store, stale))
	})

	t.Run("double payment is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "card")
		require.ErrorIs(t, err, commands.ErrPaymentProcessed)

		require.Len(t, listPayments(t, f.store, created.ID()), 1)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("refunds 75 percent and releases the slot", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)
		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		refund, err := f.bookings.Cancel(context.Background(), created.ID(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(7500), refund)

		cancelled := findBooking(t, f.store, created.ID())
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
		assert.Equal(t, booking.PaymentRefunded, cancelled.PaymentStatus())

		assert.True(t, findSlot(t, f.store, f.slotID).IsAvailable())

		payments := listPayments(t, f.store, created.ID())
		require.Len(t, payments, 2)
		assert.Equal(t, int64(-7500), payments[1].Amount())
		assert.Equal(t, payment.StatusRefunded, payments[1].Status())

		notifications := listNotifications(t, f.store, 1)
		require.Len(t, notifications, 3)
	})

	t.Run("deleted slot does not block the refund", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)
		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		deleteSlot(t, f.store, f.slotID)

		refund, err := f.bookings.Cancel(context.Background(), created.ID(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(7500), refund)

		cancelled := findBooking(t, f.store, created.ID())
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
		assert.Equal(t, booking.PaymentRefunded, cancelled.PaymentStatus())

		payments := listPayments(t, f.store, created.ID())
		require.Len(t, payments, 2)
		assert.Equal(t, int64(-7500), payments[1].Amount())

		require.Len(t, listNotifications(t, f.store, 1), 3)
	})

	t.Run("pending booking cannot be cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)

		_, err = f.bookings.Cancel(context.Background(), created.ID(), 1)

		require.ErrorIs(t, err, commands.ErrBookingNotActive)
	})

	t.Run("cancel is not repeatable", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)
		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		_, err = f.bookings.Cancel(context.Background(), created.ID(), 1)
		require.NoError(t, err)

		_, err = f.bookings.Cancel(context.Background(), created.ID(), 1)
		require.ErrorIs(t, err, commands.ErrBookingNotActive)
	})

	t.Run("only the owner can cancel", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.bookings.Create(context.Background(), f.createParams(1))
		require.NoError(t, err)
		_, err = f.bookings.Pay(context.Background(), created.ID(), 1, "upi")
		require.NoError(t, err)

		_, err = f.bookings.Cancel(context.Background(), created.ID(), 2)

		require.ErrorIs(t, err, commands.ErrNotBookingOwner)
	})
}
