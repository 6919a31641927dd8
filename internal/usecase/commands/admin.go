package commands

import (
	"context"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

var (
	ErrInvalidLocation = errs.New("invalid location data")
	ErrInvalidSlot     = errs.New("invalid slot data")
)

type CreateLocationParams struct {
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	PricePerHour int64
	ImageURL     string
	Facilities   []string
}

// UpdateLocationParams carries partial updates; nil fields keep the
// current value.
type UpdateLocationParams struct {
	Name         *string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	PricePerHour *int64
	ImageURL     *string
	Facilities   []string
}

type CreateSlotParams struct {
	LocationID  int64
	Label       string
	VehicleType slot.VehicleType
	IsAvailable *bool
}

type UpdateSlotParams struct {
	Label       *string
	VehicleType *slot.VehicleType
	IsAvailable *bool
}

type ParkingCommands interface {
	CreateLocation(ctx context.Context, params CreateLocationParams) (*location.Location, error)
	UpdateLocation(ctx context.Context, id int64, params UpdateLocationParams) (*location.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
	CreateSlot(ctx context.Context, params CreateSlotParams) (*slot.Slot, error)
	UpdateSlot(ctx context.Context, id int64, params UpdateSlotParams) (*slot.Slot, error)
	DeleteSlot(ctx context.Context, id int64) error
}

type parkingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewParkingCommands(uow shared.UnitOfWork, clk clock.Clock) ParkingCommands {
	return &parkingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (p *parkingCommandsImpl) CreateLocation(ctx context.Context, params CreateLocationParams) (*location.Location, error) {
	entity, err := location.NewLocation(
		params.Name, params.Address,
		params.Latitude, params.Longitude,
		params.PricePerHour, params.ImageURL, params.Facilities,
		p.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLocation)
	}

	var created *location.Location
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Locations().Create(ctx, entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrStoreOperationFailed)
		}
		created = entity.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *parkingCommandsImpl) UpdateLocation(ctx context.Context, id int64, params UpdateLocationParams) (*location.Location, error) {
	var updated *location.Location

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Locations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		name := current.Name()
		if params.Name != nil {
			name = *params.Name
		}
		address := current.Address()
		if params.Address != nil {
			address = *params.Address
		}
		lat := current.Latitude()
		if params.Latitude != nil {
			lat = *params.Latitude
		}
		lng := current.Longitude()
		if params.Longitude != nil {
			lng = *params.Longitude
		}
		price := current.PricePerHour()
		if params.PricePerHour != nil {
			price = *params.PricePerHour
		}
		imageURL := current.ImageURL()
		if params.ImageURL != nil {
			imageURL = *params.ImageURL
		}
		facilities := current.Facilities()
		if params.Facilities != nil {
			facilities = params.Facilities
		}

		entity, err := location.NewLocation(name, address, lat, lng, price, imageURL, facilities, current.CreatedAt())
		if err != nil {
			return errs.Mark(err, ErrInvalidLocation)
		}
		updated = entity.WithID(current.ID())

		if err := tx.Locations().Update(ctx, updated); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLocation removes only the location itself; slots and bookings are
// intentionally left untouched.
func (p *parkingCommandsImpl) DeleteLocation(ctx context.Context, id int64) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}

func (p *parkingCommandsImpl) CreateSlot(ctx context.Context, params CreateSlotParams) (*slot.Slot, error) {
	available := true
	if params.IsAvailable != nil {
		available = *params.IsAvailable
	}

	var created *slot.Slot
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Locations().FindByID(ctx, params.LocationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		entity, err := slot.NewSlot(params.LocationID, params.Label, params.VehicleType, available, p.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidSlot)
		}

		id, err := tx.Slots().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		created = entity.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *parkingCommandsImpl) UpdateSlot(ctx context.Context, id int64, params UpdateSlotParams) (*slot.Slot, error) {
	var updated *slot.Slot

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Slots().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		label := current.Label()
		if params.Label != nil {
			label = *params.Label
		}
		vehicleType := current.VehicleType()
		if params.VehicleType != nil {
			vehicleType = *params.VehicleType
		}
		available := current.IsAvailable()
		if params.IsAvailable != nil {
			available = *params.IsAvailable
		}

		entity, err := slot.NewSlot(current.LocationID(), label, vehicleType, available, p.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidSlot)
		}
		updated = entity.WithID(current.ID())

		if err := tx.Slots().Update(ctx, updated); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (p *parkingCommandsImpl) DeleteSlot(ctx context.Context, id int64) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}
