package postgres

import (
	"context"
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/slot"
	"parkspot/internal/infra"
)

type locationRepo struct {
	db DBTX
}

func (r *locationRepo) Create(ctx context.Context, l *location.Location) (int64, error) {
	const q = `
		INSERT INTO locations (name, address, latitude, longitude, price_per_hour, image_url, facilities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		l.Name(), l.Address(), l.Latitude(), l.Longitude(),
		l.PricePerHour(), l.ImageURL(), l.Facilities(), l.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "location not found")
	}
	return id, nil
}

func (r *locationRepo) Update(ctx context.Context, l *location.Location) error {
	const q = `
		UPDATE locations
		SET name = $2, address = $3, latitude = $4, longitude = $5,
		    price_per_hour = $6, image_url = $7, facilities = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		l.ID(), l.Name(), l.Address(), l.Latitude(), l.Longitude(),
		l.PricePerHour(), l.ImageURL(), l.Facilities(),
	)
	if err != nil {
		return wrapQueryErr(err, "location not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "location not found")
	}
	return nil
}

// Delete removes the location row only. Slots and bookings keep their
// location_id; reads tolerate the dangling reference.
func (r *locationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr(err, "location not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "location not found")
	}
	return nil
}

func (r *locationRepo) FindByID(ctx context.Context, id int64) (*location.Location, error) {
	const q = `
		SELECT id, name, address, latitude, longitude, price_per_hour, image_url, facilities, created_at
		FROM locations
		WHERE id = $1`

	return scanLocation(r.db.QueryRow(ctx, q, id))
}

func (r *locationRepo) List(ctx context.Context) ([]*location.Location, error) {
	const q = `
		SELECT id, name, address, latitude, longitude, price_per_hour, image_url, facilities, created_at
		FROM locations
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, wrapQueryErr(err, "location not found")
	}
	defer rows.Close()

	var locations []*location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "location not found")
	}
	return locations, nil
}

func scanLocation(row rowScanner) (*location.Location, error) {
	var (
		id           int64
		name         string
		address      string
		lat          float64
		lng          float64
		pricePerHour int64
		imageURL     string
		facilities   []string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &name, &address, &lat, &lng, &pricePerHour, &imageURL, &facilities, &createdAt); err != nil {
		return nil, wrapQueryErr(err, "location not found")
	}
	return location.Reconstruct(id, name, address, lat, lng, pricePerHour, imageURL, facilities, createdAt), nil
}

type slotRepo struct {
	db DBTX
}

func (r *slotRepo) Create(ctx context.Context, s *slot.Slot) (int64, error) {
	const q = `
		INSERT INTO slots (location_id, label, vehicle_type, is_available, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		s.LocationID(), s.Label(), s.VehicleType().String(), s.IsAvailable(), s.LastUpdated(),
	).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "slot not found")
	}
	return id, nil
}

func (r *slotRepo) Update(ctx context.Context, s *slot.Slot) error {
	const q = `
		UPDATE slots
		SET location_id = $2, label = $3, vehicle_type = $4, is_available = $5, last_updated = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		s.ID(), s.LocationID(), s.Label(), s.VehicleType().String(), s.IsAvailable(), s.LastUpdated(),
	)
	if err != nil {
		return wrapQueryErr(err, "slot not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr(err, "slot not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}

func (r *slotRepo) FindByID(ctx context.Context, id int64) (*slot.Slot, error) {
	const q = `
		SELECT id, location_id, label, vehicle_type, is_available, last_updated
		FROM slots
		WHERE id = $1`

	return scanSlot(r.db.QueryRow(ctx, q, id))
}

func (r *slotRepo) ListByLocation(ctx context.Context, locationID int64) ([]*slot.Slot, error) {
	const q = `
		SELECT id, location_id, label, vehicle_type, is_available, last_updated
		FROM slots
		WHERE location_id = $1
		ORDER BY id`

	return r.querySlots(ctx, q, locationID)
}

func (r *slotRepo) List(ctx context.Context) ([]*slot.Slot, error) {
	const q = `
		SELECT id, location_id, label, vehicle_type, is_available, last_updated
		FROM slots
		ORDER BY id`

	return r.querySlots(ctx, q)
}

func (r *slotRepo) SetAvailability(ctx context.Context, id int64, available bool, now time.Time) error {
	const q = `
		UPDATE slots
		SET is_available = $2, last_updated = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, available, now)
	if err != nil {
		return wrapQueryErr(err, "slot not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}

func (r *slotRepo) querySlots(ctx context.Context, q string, args ...any) ([]*slot.Slot, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr(err, "slot not found")
	}
	defer rows.Close()

	var slots []*slot.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "slot not found")
	}
	return slots, nil
}

func scanSlot(row rowScanner) (*slot.Slot, error) {
	var (
		id          int64
		locationID  int64
		label       string
		vehicleType string
		isAvailable bool
		lastUpdated time.Time
	)
	if err := row.Scan(&id, &locationID, &label, &vehicleType, &isAvailable, &lastUpdated); err != nil {
		return nil, wrapQueryErr(err, "slot not found")
	}
	return slot.Reconstruct(id, locationID, label, slot.VehicleType(vehicleType), isAvailable, lastUpdated), nil
}
