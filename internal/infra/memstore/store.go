// Package memstore is the reference ledger backing: all entity tables live
// in process memory behind a single RWMutex. Within takes the writer lock,
// so one operation's read-validate-write sequence is atomic with respect
// to every other operation and to the sensor reconciliation tick.
package memstore

import (
	"context"
	"sync"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/location"
	"parkspot/internal/domain/notification"
	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/domain/user"
	"parkspot/internal/usecase/shared"
)

type Store struct {
	mu sync.RWMutex

	users         map[int64]*user.User
	codes         map[int64]*otp.OneTimeCode
	locations     map[int64]*location.Location
	slots         map[int64]*slot.Slot
	bookings      map[int64]*booking.Booking
	payments      map[int64]*payment.Payment
	notifications map[int64]*notification.Notification

	// Monotonically increasing, never reused after deletion.
	nextUserID         int64
	nextCodeID         int64
	nextLocationID     int64
	nextSlotID         int64
	nextBookingID      int64
	nextPaymentID      int64
	nextNotificationID int64
}

func New() *Store {
	return &Store{
		users:              make(map[int64]*user.User),
		codes:              make(map[int64]*otp.OneTimeCode),
		locations:          make(map[int64]*location.Location),
		slots:              make(map[int64]*slot.Slot),
		bookings:           make(map[int64]*booking.Booking),
		payments:           make(map[int64]*payment.Payment),
		notifications:      make(map[int64]*notification.Notification),
		nextUserID:         1,
		nextCodeID:         1,
		nextLocationID:     1,
		nextSlotID:         1,
		nextBookingID:      1,
		nextPaymentID:      1,
		nextNotificationID: 1,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{store: s})
}

func (s *Store) WithinRead(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &memTx{store: s})
}

// memTx is only valid while the store lock is held; repositories touch the
// tables directly without further synchronization.
type memTx struct {
	store *Store
}

func (t *memTx) Users() shared.UserRepository                 { return &userRepo{t.store} }
func (t *memTx) Codes() shared.CodeRepository                 { return &codeRepo{t.store} }
func (t *memTx) Locations() shared.LocationRepository         { return &locationRepo{t.store} }
func (t *memTx) Slots() shared.SlotRepository                 { return &slotRepo{t.store} }
func (t *memTx) Bookings() shared.BookingRepository           { return &bookingRepo{t.store} }
func (t *memTx) Payments() shared.PaymentRepository           { return &paymentRepo{t.store} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{t.store} }
