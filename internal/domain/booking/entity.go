package booking

import (
	"errors"
	"time"

	"parkspot/internal/domain/slot"
)

var (
	ErrInvalidTier        = errors.New("invalid duration tier")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrAlreadyPaid        = errors.New("payment already processed")
	ErrNotActive          = errors.New("booking is not active")
)

// Term is the fixed occupancy window of every booking.
const Term = 7 * 24 * time.Hour

// RefundPercent of the paid amount returned on cancellation; the remainder
// is the cancellation penalty.
const RefundPercent = 75

type Booking struct {
	id            int64
	userID        int64
	locationID    int64
	slotID        int64
	startDate     time.Time
	endDate       time.Time
	durationTier  DurationTier
	vehicleType   slot.VehicleType
	amount        int64
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
}

// NewBooking prices the booking from the location's current hourly rate and
// opens it in the pending/unpaid state. The caller is responsible for
// holding the slot.
func NewBooking(userID, locationID, slotID int64, tier DurationTier, vehicleType slot.VehicleType, pricePerHour int64, now time.Time) (*Booking, error) {
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if !vehicleType.IsValid() {
		return nil, ErrInvalidVehicleType
	}

	return &Booking{
		userID:        userID,
		locationID:    locationID,
		slotID:        slotID,
		startDate:     now,
		endDate:       now.Add(Term),
		durationTier:  tier,
		vehicleType:   vehicleType,
		amount:        AmountFor(pricePerHour, tier),
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(
	id, userID, locationID, slotID int64,
	startDate, endDate time.Time,
	tier DurationTier,
	vehicleType slot.VehicleType,
	amount int64,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		locationID:    locationID,
		slotID:        slotID,
		startDate:     startDate,
		endDate:       endDate,
		durationTier:  tier,
		vehicleType:   vehicleType,
		amount:        amount,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
	}
}

func (b *Booking) WithID(id int64) *Booking {
	clone := *b
	clone.id = id
	return &clone
}

// MarkPaid transitions pending/unpaid to active/paid.
func (b *Booking) MarkPaid() error {
	if b.paymentStatus != PaymentPending {
		return ErrAlreadyPaid
	}
	b.paymentStatus = PaymentPaid
	b.status = StatusActive
	return nil
}

// Cancel transitions an active booking to cancelled/refunded and returns
// the refund amount.
func (b *Booking) Cancel() (int64, error) {
	if b.status != StatusActive {
		return 0, ErrNotActive
	}
	b.status = StatusCancelled
	b.paymentStatus = PaymentRefunded
	return RefundFor(b.amount), nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

// HoldsSlot reports whether the booking currently reserves its slot.
// Pending bookings hold the slot from creation so the payment step cannot
// race another user onto it.
func (b *Booking) HoldsSlot() bool {
	return b.status == StatusPending || b.status == StatusActive
}

func (b *Booking) HasExpired(now time.Time) bool {
	return now.After(b.endDate)
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) UserID() int64                { return b.userID }
func (b *Booking) LocationID() int64            { return b.locationID }
func (b *Booking) SlotID() int64                { return b.slotID }
func (b *Booking) StartDate() time.Time         { return b.startDate }
func (b *Booking) EndDate() time.Time           { return b.endDate }
func (b *Booking) DurationTier() DurationTier   { return b.durationTier }
func (b *Booking) VehicleType() slot.VehicleType { return b.vehicleType }
func (b *Booking) Amount() int64                { return b.amount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }

// AmountFor rounds pricePerHour prorated to the tier, half up, in cents.
func AmountFor(pricePerHour int64, tier DurationTier) int64 {
	return (pricePerHour*int64(tier.Minutes()) + 30) / 60
}

// RefundFor rounds RefundPercent of amount, half up, in cents.
func RefundFor(amount int64) int64 {
	return (amount*RefundPercent + 50) / 100
}
