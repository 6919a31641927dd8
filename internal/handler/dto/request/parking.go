package request

type CreateLocationRequest struct {
	Name         string   `json:"name" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Latitude     float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" binding:"min=-180,max=180"`
	PricePerHour int64    `json:"pricePerHour" binding:"min=0"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Facilities   []string `json:"facilities,omitempty"`
}

type UpdateLocationRequest struct {
	Name         *string  `json:"name,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	PricePerHour *int64   `json:"pricePerHour,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Facilities   []string `json:"facilities,omitempty"`
}

type CreateSlotRequest struct {
	Label       string `json:"label" binding:"required"`
	VehicleType string `json:"vehicleType" binding:"required"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

type UpdateSlotRequest struct {
	Label       *string `json:"label,omitempty"`
	VehicleType *string `json:"vehicleType,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}
