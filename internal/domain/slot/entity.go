package slot

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyLabel         = errors.New("slot label is required")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
)

type VehicleType string

const (
	VehicleTwoWheeler  VehicleType = "two-wheeler"
	VehicleFourWheeler VehicleType = "four-wheeler"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTwoWheeler, VehicleFourWheeler:
		return true
	default:
		return false
	}
}

type Slot struct {
	id          int64
	locationID  int64
	label       string
	vehicleType VehicleType
	isAvailable bool
	lastUpdated time.Time
}

func NewSlot(locationID int64, label string, vehicleType VehicleType, isAvailable bool, now time.Time) (*Slot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if !vehicleType.IsValid() {
		return nil, ErrInvalidVehicleType
	}

	return &Slot{
		locationID:  locationID,
		label:       label,
		vehicleType: vehicleType,
		isAvailable: isAvailable,
		lastUpdated: now,
	}, nil
}

func Reconstruct(id, locationID int64, label string, vehicleType VehicleType, isAvailable bool, lastUpdated time.Time) *Slot {
	return &Slot{
		id:          id,
		locationID:  locationID,
		label:       label,
		vehicleType: vehicleType,
		isAvailable: isAvailable,
		lastUpdated: lastUpdated,
	}
}

func (s *Slot) WithID(id int64) *Slot {
	clone := *s
	clone.id = id
	return &clone
}

func (s *Slot) ID() int64                { return s.id }
func (s *Slot) LocationID() int64        { return s.locationID }
func (s *Slot) Label() string            { return s.label }
func (s *Slot) VehicleType() VehicleType { return s.vehicleType }
func (s *Slot) IsAvailable() bool        { return s.isAvailable }
func (s *Slot) LastUpdated() time.Time   { return s.lastUpdated }
