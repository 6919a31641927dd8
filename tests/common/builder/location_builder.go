//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/location"
)

type LocationBuilder struct {
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	PricePerHour int64
	ImageURL     string
	Facilities   []string
	Now          time.Time
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		Name:         "Central Garage",
		Address:      "12 Main Street",
		Latitude:     12.9716,
		Longitude:    77.5946,
		PricePerHour: 10000,
		ImageURL:     "https://example.com/garage.jpg",
		Facilities:   []string{"covered", "cctv"},
		Now:          time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) BuildDomain() (*location.Location, error) {
	return location.NewLocation(
		b.Name, b.Address, b.Latitude, b.Longitude,
		b.PricePerHour, b.ImageURL, b.Facilities, b.Now,
	)
}

// Fluent builder methods
func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.Name = name
	return b
}

func (b *LocationBuilder) WithAddress(address string) *LocationBuilder {
	b.Address = address
	return b
}

func (b *LocationBuilder) WithCoords(lat, lng float64) *LocationBuilder {
	b.Latitude = lat
	b.Longitude = lng
	return b
}

func (b *LocationBuilder) WithPricePerHour(price int64) *LocationBuilder {
	b.PricePerHour = price
	return b
}

func (b *LocationBuilder) WithFacilities(facilities ...string) *LocationBuilder {
	b.Facilities = facilities
	return b
}
