package request

type CreateBookingRequest struct {
	LocationID   int64  `json:"locationId" binding:"required"`
	SlotID       int64  `json:"slotId" binding:"required"`
	DurationTier int    `json:"durationTier" binding:"required"`
	VehicleType  string `json:"vehicleType" binding:"required"`
}

type PayBookingRequest struct {
	Method string `json:"method" binding:"required"`
}
