package location

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName      = errors.New("location name is required")
	ErrEmptyAddress   = errors.New("location address is required")
	ErrInvalidCoords  = errors.New("coordinates out of range")
	ErrNegativePrice  = errors.New("price per hour cannot be negative")
	ErrEmptyFacility  = errors.New("facility tags cannot be empty strings")
)

type Location struct {
	id           int64
	name         string
	address      string
	latitude     float64
	longitude    float64
	pricePerHour int64
	imageURL     string
	facilities   []string
	createdAt    time.Time
}

func NewLocation(name, address string, lat, lng float64, pricePerHour int64, imageURL string, facilities []string, now time.Time) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if !ValidCoords(lat, lng) {
		return nil, ErrInvalidCoords
	}
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}
	for _, f := range facilities {
		if strings.TrimSpace(f) == "" {
			return nil, ErrEmptyFacility
		}
	}

	return &Location{
		name:         name,
		address:      address,
		latitude:     lat,
		longitude:    lng,
		pricePerHour: pricePerHour,
		imageURL:     imageURL,
		facilities:   facilities,
		createdAt:    now,
	}, nil
}

func Reconstruct(id int64, name, address string, lat, lng float64, pricePerHour int64, imageURL string, facilities []string, createdAt time.Time) *Location {
	return &Location{
		id:           id,
		name:         name,
		address:      address,
		latitude:     lat,
		longitude:    lng,
		pricePerHour: pricePerHour,
		imageURL:     imageURL,
		facilities:   facilities,
		createdAt:    createdAt,
	}
}

func (l *Location) WithID(id int64) *Location {
	clone := *l
	clone.id = id
	return &clone
}

func (l *Location) ID() int64            { return l.id }
func (l *Location) Name() string         { return l.name }
func (l *Location) Address() string      { return l.address }
func (l *Location) Latitude() float64    { return l.latitude }
func (l *Location) Longitude() float64   { return l.longitude }
func (l *Location) PricePerHour() int64  { return l.pricePerHour }
func (l *Location) ImageURL() string     { return l.imageURL }
func (l *Location) Facilities() []string { return l.facilities }
func (l *Location) CreatedAt() time.Time { return l.createdAt }

func ValidCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
