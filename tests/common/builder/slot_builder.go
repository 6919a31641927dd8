//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/slot"
)

type SlotBuilder struct {
	LocationID  int64
	Label       string
	VehicleType string
	IsAvailable bool
	Now         time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		LocationID:  1,
		Label:       "A-01",
		VehicleType: "four-wheeler",
		IsAvailable: true,
		Now:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.NewSlot(b.LocationID, b.Label, slot.VehicleType(b.VehicleType), b.IsAvailable, b.Now)
}

// Fluent builder methods
func (b *SlotBuilder) WithLocationID(id int64) *SlotBuilder {
	b.LocationID = id
	return b
}

func (b *SlotBuilder) WithLabel(label string) *SlotBuilder {
	b.Label = label
	return b
}

func (b *SlotBuilder) WithVehicleType(vt string) *SlotBuilder {
	b.VehicleType = vt
	return b
}

func (b *SlotBuilder) AsUnavailable() *SlotBuilder {
	b.IsAvailable = false
	return b
}
