package queries

import (
	"context"
	"math"
	"sort"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/geo"
	"parkspot/internal/usecase/shared"
)

var (
	ErrLocationNotFound = errs.New("location not found")
	ErrInvalidRadius    = errs.New("radius must be positive")
	ErrInvalidCoords    = errs.New("coordinates out of range")
)

type ParkingQueries interface {
	ListLocations(ctx context.Context) ([]LocationView, error)
	GetLocation(ctx context.Context, id int64) (*LocationDetailView, error)
	// ListNearby returns locations within radiusKm of the query point,
	// closest first, with live slot counts.
	ListNearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyLocationView, error)
	ListSlots(ctx context.Context, locationID int64, vehicleType *slot.VehicleType) ([]SlotView, error)
}

type parkingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewParkingQueries(uow shared.UnitOfWork) ParkingQueries {
	return &parkingQueriesImpl{uow: uow}
}

func (q *parkingQueriesImpl) ListLocations(ctx context.Context) ([]LocationView, error) {
	var views []LocationView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		locations, err := tx.Locations().List(ctx)
		if err != nil {
			return err
		}
		views = make([]LocationView, 0, len(locations))
		for _, l := range locations {
			view, err := buildLocationView(ctx, tx, l)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *parkingQueriesImpl) GetLocation(ctx context.Context, id int64) (*LocationDetailView, error) {
	var detail *LocationDetailView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Locations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return err
		}

		slots, err := tx.Slots().ListByLocation(ctx, l.ID())
		if err != nil {
			return err
		}

		view := LocationDetailView{
			LocationView: locationViewOf(l),
			Slots:        make([]SlotView, 0, len(slots)),
		}
		for _, s := range slots {
			view.TotalSlots++
			if s.IsAvailable() {
				view.AvailableSlots++
			}
			view.Slots = append(view.Slots, slotViewOf(s))
		}
		detail = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (q *parkingQueriesImpl) ListNearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyLocationView, error) {
	if !location.ValidCoords(lat, lng) {
		return nil, ErrInvalidCoords
	}
	if radiusKm <= 0 {
		return nil, ErrInvalidRadius
	}

	var views []NearbyLocationView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		locations, err := tx.Locations().List(ctx)
		if err != nil {
			return err
		}

		for _, l := range locations {
			distance := geo.DistanceKm(lat, lng, l.Latitude(), l.Longitude())
			if distance > radiusKm {
				continue
			}
			view, err := buildLocationView(ctx, tx, l)
			if err != nil {
				return err
			}
			views = append(views, NearbyLocationView{
				LocationView: view,
				DistanceKm:   math.Round(distance*100) / 100,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].DistanceKm < views[j].DistanceKm
	})
	return views, nil
}

func (q *parkingQueriesImpl) ListSlots(ctx context.Context, locationID int64, vehicleType *slot.VehicleType) ([]SlotView, error) {
	var views []SlotView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Locations().FindByID(ctx, locationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLocationNotFound
			}
			return err
		}

		slots, err := tx.Slots().ListByLocation(ctx, locationID)
		if err != nil {
			return err
		}
		for _, s := range slots {
			if vehicleType != nil && s.VehicleType() != *vehicleType {
				continue
			}
			views = append(views, slotViewOf(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func buildLocationView(ctx context.Context, tx shared.Tx, l *location.Location) (LocationView, error) {
	view := locationViewOf(l)

	slots, err := tx.Slots().ListByLocation(ctx, l.ID())
	if err != nil {
		return LocationView{}, err
	}
	for _, s := range slots {
		view.TotalSlots++
		if s.IsAvailable() {
			view.AvailableSlots++
		}
	}
	return view, nil
}

func locationViewOf(l *location.Location) LocationView {
	return LocationView{
		ID:           l.ID(),
		Name:         l.Name(),
		Address:      l.Address(),
		Latitude:     l.Latitude(),
		Longitude:    l.Longitude(),
		PricePerHour: l.PricePerHour(),
		ImageURL:     l.ImageURL(),
		Facilities:   l.Facilities(),
	}
}

func slotViewOf(s *slot.Slot) SlotView {
	return SlotView{
		ID:          s.ID(),
		LocationID:  s.LocationID(),
		Label:       s.Label(),
		VehicleType: s.VehicleType(),
		IsAvailable: s.IsAvailable(),
		LastUpdated: s.LastUpdated(),
	}
}
