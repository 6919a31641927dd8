package commands

import (
	"context"
	"fmt"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/notification"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

var (
	ErrLocationNotFound     = errs.New("location not found")
	ErrSlotNotFound         = errs.New("slot not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrActiveBookingExists  = errs.New("user already has an active booking")
	ErrSlotUnavailable      = errs.New("slot is not available")
	ErrSlotLocationMismatch = errs.New("slot does not belong to location")
	ErrInvalidDurationTier  = errs.New("invalid duration tier")
	ErrInvalidVehicleType   = errs.New("invalid vehicle type")
	ErrPaymentProcessed     = errs.New("payment already processed")
	ErrNotBookingOwner      = errs.New("booking belongs to another user")
	ErrBookingNotActive     = errs.New("booking is not active")
)

type CreateBookingParams struct {
	UserID      int64
	LocationID  int64
	SlotID      int64
	Tier        booking.DurationTier
	VehicleType slot.VehicleType
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	Pay(ctx context.Context, bookingID, requesterID int64, method string) (*booking.Booking, error)
	// Cancel returns the refund amount credited back to the user.
	Cancel(ctx context.Context, bookingID, requesterID int64) (int64, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Create opens a pending booking and takes the slot out of circulation in
// the same critical section. Holding the slot before payment prevents two
// users from racing each other through the payment step. All preconditions
// are checked before the first write, so a failed call leaves no trace.
func (b *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	if !params.Tier.IsValid() {
		return nil, ErrInvalidDurationTier
	}
	if !params.VehicleType.IsValid() {
		return nil, ErrInvalidVehicleType
	}

	var created *booking.Booking

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// A pending booking already holds its slot, so it blocks a new
		// booking the same way an active one does.
		open, err := tx.Bookings().ListByUser(ctx, params.UserID, []booking.Status{
			booking.StatusPending,
			booking.StatusActive,
		})
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if len(open) > 0 {
			return ErrActiveBookingExists
		}

		loc, err := tx.Locations().FindByID(ctx, params.LocationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		parkingSlot, err := tx.Slots().FindByID(ctx, params.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		if parkingSlot.LocationID() != loc.ID() {
			return ErrSlotLocationMismatch
		}
		if !parkingSlot.IsAvailable() {
			return ErrSlotUnavailable
		}

		now := b.clock.Now()
		entity, err := booking.NewBooking(
			params.UserID, loc.ID(), parkingSlot.ID(),
			params.Tier, params.VehicleType,
			loc.PricePerHour(), now,
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidDurationTier)
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		created = entity.WithID(id)

		if err := tx.Slots().SetAvailability(ctx, parkingSlot.ID(), false, now); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		return b.notify(ctx, tx, params.UserID,
			"Booking Created",
			fmt.Sprintf("Your parking booking at %s has been created. Complete the payment to activate it.", loc.Name()),
			notification.KindBooking,
		)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Pay records the charge for the full amount and activates the booking.
func (b *bookingCommandsImpl) Pay(ctx context.Context, bookingID, requesterID int64, method string) (*booking.Booking, error) {
	var paid *booking.Booking

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		if entity.UserID() != requesterID {
			return ErrNotBookingOwner
		}

		// The user may hold at most one active booking, re-checked here so a
		// stale pending booking cannot be activated alongside another one.
		if _, err := tx.Bookings().FindActiveByUser(ctx, entity.UserID()); err == nil {
			return ErrActiveBookingExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		if err := entity.MarkPaid(); err != nil {
			return ErrPaymentProcessed
		}

		now := b.clock.Now()
		charge, err := payment.NewCharge(entity.ID(), entity.UserID(), entity.Amount(), method, now)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if _, err := tx.Payments().Create(ctx, charge); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		if err := tx.Bookings().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		paid = entity

		return b.notify(ctx, tx, entity.UserID(),
			"Payment Successful",
			fmt.Sprintf("Payment of %d received. Your parking booking is now active.", entity.Amount()),
			notification.KindPayment,
		)
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// Cancel releases the slot, refunds 75% of the paid amount and appends the
// offsetting refund payment if a successful charge exists.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, requesterID int64) (int64, error) {
	var refund int64

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		if entity.UserID() != requesterID {
			return ErrNotBookingOwner
		}

		refund, err = entity.Cancel()
		if err != nil {
			return ErrBookingNotActive
		}

		if err := tx.Bookings().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		// The slot may have been deleted by an admin while the booking was
		// open; the cancellation still has to go through with its refund.
		now := b.clock.Now()
		if err := tx.Slots().SetAvailability(ctx, entity.SlotID(), true, now); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		charge, err := tx.Payments().FindChargeByBooking(ctx, entity.ID())
		if err == nil {
			refundPayment, refundErr := payment.NewRefund(entity.ID(), entity.UserID(), -refund, charge.Method(), now)
			if refundErr != nil {
				return errs.Mark(refundErr, ErrStoreOperationFailed)
			}
			if _, refundErr = tx.Payments().Create(ctx, refundPayment); refundErr != nil {
				return errs.Mark(refundErr, ErrStoreOperationFailed)
			}
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		return b.notify(ctx, tx, entity.UserID(),
			"Booking Cancelled",
			fmt.Sprintf("Your parking booking has been cancelled. A refund of %d has been issued.", refund),
			notification.KindBooking,
		)
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

func (b *bookingCommandsImpl) notify(ctx context.Context, tx shared.Tx, userID int64, title, message string, kind notification.Kind) error {
	n, err := notification.NewNotification(userID, title, message, kind, b.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if _, err := tx.Notifications().Create(ctx, n); err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}
