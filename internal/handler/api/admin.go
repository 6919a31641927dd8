package api

import (
	"errors"
	"net/http"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/slot"
	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	parkingCommands  commands.ParkingCommands
	bookingQueries   queries.BookingQueries
	dashboardQueries queries.DashboardQueries
}

func NewAdminHandler(
	parkingCommands commands.ParkingCommands,
	bookingQueries queries.BookingQueries,
	dashboardQueries queries.DashboardQueries,
) *AdminHandler {
	return &AdminHandler{
		parkingCommands:  parkingCommands,
		bookingQueries:   bookingQueries,
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Create location
// @Description Create a parking location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location data"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/locations [post]
func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.parkingCommands.CreateLocation(c.Request.Context(), commands.CreateLocationParams{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PricePerHour: req.PricePerHour,
		ImageURL:     req.ImageURL,
		Facilities:   req.Facilities,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidLocation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLocationEntity(created))
}

// @Summary Update location
// @Description Update fields of a parking location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id} [put]
func (h *AdminHandler) UpdateLocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var req reqdto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.parkingCommands.UpdateLocation(c.Request.Context(), id, commands.UpdateLocationParams{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PricePerHour: req.PricePerHour,
		ImageURL:     req.ImageURL,
		Facilities:   req.Facilities,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, commands.ErrInvalidLocation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationEntity(updated))
}

// @Summary Delete location
// @Description Delete a parking location; its slots are left in place
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id} [delete]
func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	if err := h.parkingCommands.DeleteLocation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrLocationNotFound):
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

	c.JSON(http.StatusOK, gin.H{
		"message": "Location deleted",
	})
}

// @Summary Create slot
// @Description Create a slot under a location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body reqdto.CreateSlotRequest true "Slot data"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id}/slots [post]
func (h *AdminHandler) CreateSlot(c *gin.Context) {
	locationID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.parkingCommands.CreateSlot(c.Request.Context(), commands.CreateSlotParams{
		LocationID:  locationID,
		Label:       req.Label,
		VehicleType: slot.VehicleType(req.VehicleType),
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, commands.ErrInvalidSlot), errors.Is(err, commands.ErrInvalidVehicleType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotEntity(created))
}

// @Summary Update slot
// @Description Update fields of a slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Fields to update"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/slots/{id} [put]
func (h *AdminHandler) UpdateSlot(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.UpdateSlotParams{
		Label:       req.Label,
		IsAvailable: req.IsAvailable,
	}
	if req.VehicleType != nil {
		vt := slot.VehicleType(*req.VehicleType)
		params.VehicleType = &vt
	}

	updated, err := h.parkingCommands.UpdateSlot(c.Request.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrInvalidSlot), errors.Is(err, commands.ErrInvalidVehicleType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotEntity(updated))
}

// @Summary Delete slot
// @Description Delete a slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/slots/{id} [delete]
func (h *AdminHandler) DeleteSlot(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.parkingCommands.DeleteSlot(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slot deleted",
	})
}

// @Summary List bookings
// @Description List all bookings, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, active, completed, cancelled)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var status *booking.Status
	if raw := c.Query("status"); raw != "" {
		s := booking.Status(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
			return
		}
		status = &s
	}

	views, err := h.bookingQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Dashboard
// @Description Aggregate slot counts, active bookings, today's revenue and recent bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboardQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
