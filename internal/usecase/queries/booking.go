package queries

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/payment"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("booking belongs to another user")
)

type BookingQueries interface {
	// ActiveByUser returns the user's current active booking, or
	// ErrBookingNotFound when none exists.
	ActiveByUser(ctx context.Context, userID int64) (*BookingView, error)
	// HistoryByUser lists the user's completed and cancelled bookings,
	// newest first.
	HistoryByUser(ctx context.Context, userID int64) ([]BookingView, error)
	// GetByID returns a booking visible to the requester: the owner or an
	// admin. Payments ride along so the client can show the charge and any
	// refund without a second round trip.
	GetByID(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*BookingView, []PaymentView, error)
	// List is the admin view over every booking, optionally filtered by
	// status.
	List(ctx context.Context, status *booking.Status) ([]BookingView, error)
	// PaymentsByUser lists every charge and refund of the user across all
	// bookings, newest first.
	PaymentsByUser(ctx context.Context, userID int64) ([]PaymentView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) ActiveByUser(ctx context.Context, userID int64) (*BookingView, error) {
	var view *BookingView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindActiveByUser(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		v, err := buildBookingView(ctx, tx, b)
		if err != nil {
			return err
		}
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) HistoryByUser(ctx context.Context, userID int64) ([]BookingView, error) {
	var views []BookingView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings, err := tx.Bookings().ListByUser(ctx, userID, []booking.Status{
			booking.StatusCompleted,
			booking.StatusCancelled,
		})
		if err != nil {
			return err
		}
		views, err = buildBookingViews(ctx, tx, bookings)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*BookingView, []PaymentView, error) {
	var (
		view     *BookingView
		payments []PaymentView
	)

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.UserID() != requesterID && !isAdmin {
			return ErrAccessDenied
		}

		v, err := buildBookingView(ctx, tx, b)
		if err != nil {
			return err
		}
		view = &v

		rows, err := tx.Payments().ListByBooking(ctx, b.ID())
		if err != nil {
			return err
		}
		payments = buildPaymentViews(rows)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return view, payments, nil
}

func (q *bookingQueriesImpl) PaymentsByUser(ctx context.Context, userID int64) ([]PaymentView, error) {
	var views []PaymentView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Payments().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		views = buildPaymentViews(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, status *booking.Status) ([]BookingView, error) {
	var views []BookingView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings, err := tx.Bookings().List(ctx, status)
		if err != nil {
			return err
		}
		views, err = buildBookingViews(ctx, tx, bookings)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// buildBookingView joins the location name and slot label onto the booking.
// Either may be gone when an admin deleted the parking rows afterwards; the
// view keeps the ids and leaves the labels blank rather than failing the
// whole read.
func buildBookingView(ctx context.Context, tx shared.Tx, b *booking.Booking) (BookingView, error) {
	view := BookingView{
		ID:            b.ID(),
		UserID:        b.UserID(),
		LocationID:    b.LocationID(),
		SlotID:        b.SlotID(),
		StartDate:     b.StartDate(),
		EndDate:       b.EndDate(),
		DurationTier:  b.DurationTier(),
		VehicleType:   b.VehicleType(),
		Amount:        b.Amount(),
		Status:        b.Status(),
		PaymentStatus: b.PaymentStatus(),
		CreatedAt:     b.CreatedAt(),
	}

	l, err := tx.Locations().FindByID(ctx, b.LocationID())
	switch {
	case err == nil:
		view.LocationName = l.Name()
	case !infra.IsKind(err, infra.KindNotFound):
		return BookingView{}, err
	}

	s, err := tx.Slots().FindByID(ctx, b.SlotID())
	switch {
	case err == nil:
		view.SlotLabel = s.Label()
	case !infra.IsKind(err, infra.KindNotFound):
		return BookingView{}, err
	}

	return view, nil
}

func buildPaymentViews(rows []*payment.Payment) []PaymentView {
	views := make([]PaymentView, 0, len(rows))
	for _, p := range rows {
		views = append(views, PaymentView{
			ID:             p.ID(),
			BookingID:      p.BookingID(),
			UserID:         p.UserID(),
			Amount:         p.Amount(),
			TransactionRef: p.TransactionRef(),
			Method:         p.Method(),
			Status:         p.Status(),
			CreatedAt:      p.CreatedAt(),
		})
	}
	return views
}

func buildBookingViews(ctx context.Context, tx shared.Tx, bookings []*booking.Booking) ([]BookingView, error) {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		v, err := buildBookingView(ctx, tx, b)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
