package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/domain/slot"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	parkingQueries queries.ParkingQueries
}

func NewParkingHandler(parkingQueries queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{parkingQueries: parkingQueries}
}

// @Summary List parking locations
// @Description List all parking locations with live slot counts
// @Tags parking
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /parking/locations [get]
func (h *ParkingHandler) ListLocations(c *gin.Context) {
	views, err := h.parkingQueries.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.LocationResponse, len(views))
	for i := range views {
		response[i] = resdto.FromLocationView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Find nearby parking
// @Description List parking locations within a radius of a point, closest first
// @Tags parking
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in kilometers (default 5)"
// @Success 200 {array} resdto.NearbyLocationResponse
// @Failure 400 {object} map[string]string
// @Router /parking/nearby [get]
func (h *ParkingHandler) ListNearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lng query parameters are required",
		})
		return
	}

	radius := 5.0
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid radius",
			})
			return
		}
		radius = parsed
	}

	views, err := h.parkingQueries.ListNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCoords):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coordinates out of range",
			})
		case errors.Is(err, queries.ErrInvalidRadius):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Radius must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.NearbyLocationResponse, len(views))
	for i := range views {
		response[i] = resdto.FromNearbyLocationView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get parking location
// @Description Get a parking location with all its slots
// @Tags parking
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} resdto.LocationDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/locations/{id} [get]
func (h *ParkingHandler) GetLocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	view, err := h.parkingQueries.GetLocation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationDetailView(view))
}

// @Summary List slots
// @Description List slots of a location, optionally filtered by vehicle type
// @Tags parking
// @Produce json
// @Param id path int true "Location ID"
// @Param vehicleType query string false "Vehicle type filter (two-wheeler, four-wheeler)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/locations/{id}/slots [get]
func (h *ParkingHandler) ListSlots(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var vehicleType *slot.VehicleType
	if raw := c.Query("vehicleType"); raw != "" {
		vt := slot.VehicleType(raw)
		if !vt.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid vehicle type",
			})
			return
		}
		vehicleType = &vt
	}

	views, err := h.parkingQueries.ListSlots(c.Request.Context(), id, vehicleType)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i := range views {
		response[i] = resdto.FromSlotView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

func parseID(c *gin.Context, param string) (int64, error) {
	return strconv.ParseInt(c.Param(param), 10, 64)
}
