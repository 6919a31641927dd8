//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/slot"
)

type BookingBuilder struct {
	UserID       int64
	LocationID   int64
	SlotID       int64
	Tier         int
	VehicleType  string
	PricePerHour int64
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:       1,
		LocationID:   1,
		SlotID:       1,
		Tier:         60,
		VehicleType:  "four-wheeler",
		PricePerHour: 10000,
		Now:          time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(
		b.UserID, b.LocationID, b.SlotID,
		booking.DurationTier(b.Tier), slot.VehicleType(b.VehicleType),
		b.PricePerHour, b.Now,
	)
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(id int64) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithTier(tier int) *BookingBuilder {
	b.Tier = tier
	return b
}

func (b *BookingBuilder) WithVehicleType(vt string) *BookingBuilder {
	b.VehicleType = vt
	return b
}

func (b *BookingBuilder) WithPricePerHour(price int64) *BookingBuilder {
	b.PricePerHour = price
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
