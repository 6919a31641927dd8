package shared

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/location"
	"parkspot/internal/domain/notification"
	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/domain/user"
)

// UnitOfWork serializes ledger operations. Every mutating operation runs
// its whole read-validate-write sequence inside Within, so the slot flip
// and the booking transition are observed together. The memory driver
// backs this with one writer lock; the postgres driver with one SQL
// transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinRead takes a shared lock (or read-only transaction) for
	// multi-table consistent reads.
	WithinRead(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Codes() CodeRepository
	Locations() LocationRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByPhone(ctx context.Context, phone string) (*user.User, error)
	Count(ctx context.Context) (int64, error)
}

type CodeRepository interface {
	Create(ctx context.Context, c *otp.OneTimeCode) (int64, error)
	// FindUsableByPhone returns unverified, unexpired codes for the phone,
	// newest first. Multiple outstanding codes may coexist.
	FindUsableByPhone(ctx context.Context, phone string, now time.Time) ([]*otp.OneTimeCode, error)
	MarkVerified(ctx context.Context, id int64, now time.Time) error
}

type LocationRepository interface {
	Create(ctx context.Context, l *location.Location) (int64, error)
	Update(ctx context.Context, l *location.Location) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*location.Location, error)
	List(ctx context.Context) ([]*location.Location, error)
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) (int64, error)
	Update(ctx context.Context, s *slot.Slot) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*slot.Slot, error)
	ListByLocation(ctx context.Context, locationID int64) ([]*slot.Slot, error)
	List(ctx context.Context) ([]*slot.Slot, error)
	SetAvailability(ctx context.Context, id int64, available bool, now time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	// Save persists status/payment-status transitions of an existing row.
	Save(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	// FindActiveByUser returns the user's single active booking, or a
	// NOT_FOUND repository error.
	FindActiveByUser(ctx context.Context, userID int64) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID int64, statuses []booking.Status) ([]*booking.Booking, error)
	List(ctx context.Context, status *booking.Status) ([]*booking.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]*booking.Booking, error)
	CountByStatus(ctx context.Context, status booking.Status) (int64, error)
	// HeldSlotIDs returns ids of slots referenced by a booking that still
	// holds its slot (pending or active).
	HeldSlotIDs(ctx context.Context) (map[int64]struct{}, error)
	// RevenueSince sums amounts of active, paid bookings created at or
	// after the cutoff.
	RevenueSince(ctx context.Context, cutoff time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (int64, error)
	// FindChargeByBooking returns the booking's successful charge payment,
	// or a NOT_FOUND repository error.
	FindChargeByBooking(ctx context.Context, bookingID int64) (*payment.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*payment.Payment, error)
	// ListByUser lists all of the user's payments, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*payment.Payment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*notification.Notification, error)
	// MarkRead flips a single notification owned by the user, returning a
	// NOT_FOUND repository error when no such row exists.
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}
