package memstore

import (
	"context"
	"sort"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/payment"
	"parkspot/internal/infra"
)

type bookingRepo struct {
	store *Store
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	id := r.store.nextBookingID
	r.store.nextBookingID++
	r.store.bookings[id] = b.WithID(id)
	return id, nil
}

func (r *bookingRepo) Save(_ context.Context, b *booking.Booking) error {
	if _, ok := r.store.bookings[b.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	clone := *b
	r.store.bookings[b.ID()] = &clone
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	clone := *b
	return &clone, nil
}

func (r *bookingRepo) FindActiveByUser(_ context.Context, userID int64) (*booking.Booking, error) {
	for _, b := range r.store.bookings {
		if b.UserID() == userID && b.Status() == booking.StatusActive {
			clone := *b
			return &clone, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "no active booking")
}

func (r *bookingRepo) ListByUser(_ context.Context, userID int64, statuses []booking.Status) ([]*booking.Booking, error) {
	wanted := make(map[booking.Status]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[s] = struct{}{}
	}

	var result []*booking.Booking
	for _, b := range r.store.bookings {
		if b.UserID() != userID {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[b.Status()]; !ok {
				continue
			}
		}
		clone := *b
		result = append(result, &clone)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *bookingRepo) List(_ context.Context, status *booking.Status) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for _, b := range r.store.bookings {
		if status != nil && b.Status() != *status {
			continue
		}
		clone := *b
		result = append(result, &clone)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *bookingRepo) ListRecent(ctx context.Context, limit int) ([]*booking.Booking, error) {
	result, err := r.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *bookingRepo) CountByStatus(_ context.Context, status booking.Status) (int64, error) {
	var n int64
	for _, b := range r.store.bookings {
		if b.Status() == status {
			n++
		}
	}
	return n, nil
}

func (r *bookingRepo) HeldSlotIDs(_ context.Context) (map[int64]struct{}, error) {
	held := make(map[int64]struct{})
	for _, b := range r.store.bookings {
		if b.HoldsSlot() {
			held[b.SlotID()] = struct{}{}
		}
	}
	return held, nil
}

func (r *bookingRepo) RevenueSince(_ context.Context, cutoff time.Time) (int64, error) {
	var total int64
	for _, b := range r.store.bookings {
		if b.Status() == booking.StatusActive &&
			b.PaymentStatus() == booking.PaymentPaid &&
			!b.CreatedAt().Before(cutoff) {
			total += b.Amount()
		}
	}
	return total, nil
}

// sortNewestFirst orders by creation time descending, falling back to id
// descending for rows created within the same clock tick.
func sortNewestFirst(bs []*booking.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].CreatedAt().Equal(bs[j].CreatedAt()) {
			return bs[i].ID() > bs[j].ID()
		}
		return bs[i].CreatedAt().After(bs[j].CreatedAt())
	})
}

type paymentRepo struct {
	store *Store
}

func (r *paymentRepo) Create(_ context.Context, p *payment.Payment) (int64, error) {
	id := r.store.nextPaymentID
	r.store.nextPaymentID++
	r.store.payments[id] = p.WithID(id)
	return id, nil
}

func (r *paymentRepo) FindChargeByBooking(_ context.Context, bookingID int64) (*payment.Payment, error) {
	for _, p := range r.store.payments {
		if p.BookingID() == bookingID && p.Status() == payment.StatusSuccess && p.Amount() > 0 {
			clone := *p
			return &clone, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "charge payment not found")
}

func (r *paymentRepo) ListByUser(_ context.Context, userID int64) ([]*payment.Payment, error) {
	var result []*payment.Payment
	for _, p := range r.store.payments {
		if p.UserID() == userID {
			clone := *p
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

func (r *paymentRepo) ListByBooking(_ context.Context, bookingID int64) ([]*payment.Payment, error) {
	var result []*payment.Payment
	for _, p := range r.store.payments {
		if p.BookingID() == bookingID {
			clone := *p
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}
