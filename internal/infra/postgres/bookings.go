package postgres

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
)

const bookingColumns = `id, user_id, location_id, slot_id, start_date, end_date,
	duration_tier, vehicle_type, amount, status, payment_status, created_at`

type bookingRepo struct {
	db DBTX
}

func (r *bookingRepo) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const q = `
		INSERT INTO bookings (user_id, location_id, slot_id, start_date, end_date,
			duration_tier, vehicle_type, amount, status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		b.UserID(), b.LocationID(), b.SlotID(), b.StartDate(), b.EndDate(),
		int(b.DurationTier()), b.VehicleType().String(), b.Amount(),
		b.Status().String(), b.PaymentStatus().String(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "booking not found")
	}
	return id, nil
}

func (r *bookingRepo) Save(ctx context.Context, b *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET status = $2, payment_status = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, b.ID(), b.Status().String(), b.PaymentStatus().String())
	if err != nil {
		return wrapQueryErr(err, "booking not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

func (r *bookingRepo) FindActiveByUser(ctx context.Context, userID int64) (*booking.Booking, error) {
	q := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`
	return scanBooking(r.db.QueryRow(ctx, q, userID, booking.StatusActive.String()))
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID int64, statuses []booking.Status) ([]*booking.Booking, error) {
	q := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC, id DESC`

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return r.queryBookings(ctx, q, userID, names)
}

func (r *bookingRepo) List(ctx context.Context, status *booking.Status) ([]*booking.Booking, error) {
	if status != nil {
		q := `SELECT ` + bookingColumns + `
			FROM bookings
			WHERE status = $1
			ORDER BY created_at DESC, id DESC`
		return r.queryBookings(ctx, q, status.String())
	}
	q := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC, id DESC`
	return r.queryBookings(ctx, q)
}

func (r *bookingRepo) ListRecent(ctx context.Context, limit int) ([]*booking.Booking, error) {
	q := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	return r.queryBookings(ctx, q, limit)
}

func (r *bookingRepo) CountByStatus(ctx context.Context, status booking.Status) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE status = $1`, status.String(),
	).Scan(&count)
	if err != nil {
		return 0, wrapQueryErr(err, "booking count failed")
	}
	return count, nil
}

func (r *bookingRepo) HeldSlotIDs(ctx context.Context) (map[int64]struct{}, error) {
	const q = `
		SELECT DISTINCT slot_id
		FROM bookings
		WHERE status = ANY($1)`

	held := []string{booking.StatusPending.String(), booking.StatusActive.String()}
	rows, err := r.db.Query(ctx, q, held)
	if err != nil {
		return nil, wrapQueryErr(err, "booking not found")
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapQueryErr(err, "booking not found")
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "booking not found")
	}
	return ids, nil
}

func (r *bookingRepo) RevenueSince(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `
		SELECT COALESCE(SUM(amount), 0)
		FROM bookings
		WHERE status = $1 AND payment_status = $2 AND created_at >= $3`

	var total int64
	err := r.db.QueryRow(ctx, q,
		booking.StatusActive.String(), booking.PaymentPaid.String(), cutoff,
	).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr(err, "revenue query failed")
	}
	return total, nil
}

func (r *bookingRepo) queryBookings(ctx context.Context, q string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr(err, "booking not found")
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "booking not found")
	}
	return bookings, nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id            int64
		userID        int64
		locationID    int64
		slotID        int64
		startDate     time.Time
		endDate       time.Time
		tier          int
		vehicleType   string
		amount        int64
		status        string
		paymentStatus string
		createdAt     time.Time
	)
	err := row.Scan(&id, &userID, &locationID, &slotID, &startDate, &endDate,
		&tier, &vehicleType, &amount, &status, &paymentStatus, &createdAt)
	if err != nil {
		return nil, wrapQueryErr(err, "booking not found")
	}
	return booking.Reconstruct(
		id, userID, locationID, slotID,
		startDate, endDate,
		booking.DurationTier(tier),
		slot.VehicleType(vehicleType),
		amount,
		booking.Status(status),
		booking.PaymentStatus(paymentStatus),
		createdAt,
	), nil
}

type paymentRepo struct {
	db DBTX
}

func (r *paymentRepo) Create(ctx context.Context, p *payment.Payment) (int64, error) {
	const q = `
		INSERT INTO payments (booking_id, user_id, amount, transaction_ref, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		p.BookingID(), p.UserID(), p.Amount(), p.TransactionRef(),
		p.Method(), p.Status().String(), p.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "payment not found")
	}
	return id, nil
}

func (r *paymentRepo) FindChargeByBooking(ctx context.Context, bookingID int64) (*payment.Payment, error) {
	const q = `
		SELECT id, booking_id, user_id, amount, transaction_ref, method, status, created_at
		FROM payments
		WHERE booking_id = $1 AND status = $2 AND amount > 0
		ORDER BY created_at DESC
		LIMIT 1`

	return scanPayment(r.db.QueryRow(ctx, q, bookingID, payment.StatusSuccess.String()))
}

func (r *paymentRepo) ListByUser(ctx context.Context, userID int64) ([]*payment.Payment, error) {
	const q = `
		SELECT id, booking_id, user_id, amount, transaction_ref, method, status, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, wrapQueryErr(err, "payment not found")
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "payment not found")
	}
	return payments, nil
}

func (r *paymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]*payment.Payment, error) {
	const q = `
		SELECT id, booking_id, user_id, amount, transaction_ref, method, status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, wrapQueryErr(err, "payment not found")
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "payment not found")
	}
	return payments, nil
}

func scanPayment(row rowScanner) (*payment.Payment, error) {
	var (
		id             int64
		bookingID      int64
		userID         int64
		amount         int64
		transactionRef string
		method         string
		status         string
		createdAt      time.Time
	)
	err := row.Scan(&id, &bookingID, &userID, &amount, &transactionRef, &method, &status, &createdAt)
	if err != nil {
		return nil, wrapQueryErr(err, "payment not found")
	}
	return payment.Reconstruct(id, bookingID, userID, amount, transactionRef, method, payment.Status(status), createdAt), nil
}
