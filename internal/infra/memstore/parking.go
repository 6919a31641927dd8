package memstore

import (
	"context"
	"sort"
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
)

type locationRepo struct {
	store *Store
}

func (r *locationRepo) Create(_ context.Context, l *location.Location) (int64, error) {
	id := r.store.nextLocationID
	r.store.nextLocationID++
	r.store.locations[id] = l.WithID(id)
	return id, nil
}

func (r *locationRepo) Update(_ context.Context, l *location.Location) error {
	if _, ok := r.store.locations[l.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "location not found")
	}
	clone := *l
	r.store.locations[l.ID()] = &clone
	return nil
}

// Delete removes only the location row. Slots and bookings referencing it
// are left in place; cascade behavior is an unresolved question of the
// reference design.
func (r *locationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.locations[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "location not found")
	}
	delete(r.store.locations, id)
	return nil
}

func (r *locationRepo) FindByID(_ context.Context, id int64) (*location.Location, error) {
	l, ok := r.store.locations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "location not found")
	}
	clone := *l
	return &clone, nil
}

func (r *locationRepo) List(_ context.Context) ([]*location.Location, error) {
	result := make([]*location.Location, 0, len(r.store.locations))
	for _, l := range r.store.locations {
		clone := *l
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

type slotRepo struct {
	store *Store
}

func (r *slotRepo) Create(_ context.Context, s *slot.Slot) (int64, error) {
	id := r.store.nextSlotID
	r.store.nextSlotID++
	r.store.slots[id] = s.WithID(id)
	return id, nil
}

func (r *slotRepo) Update(_ context.Context, s *slot.Slot) error {
	if _, ok := r.store.slots[s.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	clone := *s
	r.store.slots[s.ID()] = &clone
	return nil
}

func (r *slotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.slots[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	delete(r.store.slots, id)
	return nil
}

func (r *slotRepo) FindByID(_ context.Context, id int64) (*slot.Slot, error) {
	s, ok := r.store.slots[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	clone := *s
	return &clone, nil
}

func (r *slotRepo) ListByLocation(_ context.Context, locationID int64) ([]*slot.Slot, error) {
	var result []*slot.Slot
	for _, s := range r.store.slots {
		if s.LocationID() == locationID {
			clone := *s
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

func (r *slotRepo) List(_ context.Context) ([]*slot.Slot, error) {
	result := make([]*slot.Slot, 0, len(r.store.slots))
	for _, s := range r.store.slots {
		clone := *s
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

func (r *slotRepo) SetAvailability(_ context.Context, id int64, available bool, now time.Time) error {
	s, ok := r.store.slots[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	r.store.slots[id] = slot.Reconstruct(s.ID(), s.LocationID(), s.Label(), s.VehicleType(), available, now)
	return nil
}
