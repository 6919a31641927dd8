package response

import (
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/slot"
	"parkspot/internal/usecase/queries"
)

type LocationResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	PricePerHour   int64    `json:"pricePerHour"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Facilities     []string `json:"facilities,omitempty"`
	AvailableSlots int      `json:"availableSlots"`
	TotalSlots     int      `json:"totalSlots"`
}

type NearbyLocationResponse struct {
	LocationResponse
	DistanceKm float64 `json:"distanceKm"`
}

type LocationDetailResponse struct {
	LocationResponse
	Slots []*SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID          int64     `json:"id"`
	LocationID  int64     `json:"locationId"`
	Label       string    `json:"label"`
	VehicleType string    `json:"vehicleType"`
	IsAvailable bool      `json:"isAvailable"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func FromLocationView(view *queries.LocationView) *LocationResponse {
	return &LocationResponse{
		ID:             view.ID,
		Name:           view.Name,
		Address:        view.Address,
		Latitude:       view.Latitude,
		Longitude:      view.Longitude,
		PricePerHour:   view.PricePerHour,
		ImageURL:       view.ImageURL,
		Facilities:     view.Facilities,
		AvailableSlots: view.AvailableSlots,
		TotalSlots:     view.TotalSlots,
	}
}

func FromNearbyLocationView(view *queries.NearbyLocationView) *NearbyLocationResponse {
	return &NearbyLocationResponse{
		LocationResponse: *FromLocationView(&view.LocationView),
		DistanceKm:       view.DistanceKm,
	}
}

func FromLocationDetailView(view *queries.LocationDetailView) *LocationDetailResponse {
	slots := make([]*SlotResponse, len(view.Slots))
	for i := range view.Slots {
		slots[i] = FromSlotView(&view.Slots[i])
	}
	return &LocationDetailResponse{
		LocationResponse: *FromLocationView(&view.LocationView),
		Slots:            slots,
	}
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          view.ID,
		LocationID:  view.LocationID,
		Label:       view.Label,
		VehicleType: view.VehicleType.String(),
		IsAvailable: view.IsAvailable,
		LastUpdated: view.LastUpdated,
	}
}

// FromLocationEntity serves the admin write endpoints, which return the row
// they just created or updated without slot counts.
func FromLocationEntity(l *location.Location) *LocationResponse {
	return &LocationResponse{
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

func FromSlotEntity(s *slot.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID(),
		LocationID:  s.LocationID(),
		Label:       s.Label(),
		VehicleType: s.VehicleType().String(),
		IsAvailable: s.IsAvailable(),
		LastUpdated: s.LastUpdated(),
	}
}
