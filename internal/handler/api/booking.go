package api

import (
	"errors"
	"net/http"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/slot"
	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book an available slot for the fixed seven-day term
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateBookingParams{
		UserID:      userID,
		LocationID:  req.LocationID,
		SlotID:      req.SlotID,
		Tier:        booking.DurationTier(req.DurationTier),
		VehicleType: slot.VehicleType(req.VehicleType),
	}

	created, err := h.bookingCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDurationTier):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Duration tier must be 30, 60 or 120 minutes",
			})
		case errors.Is(err, commands.ErrInvalidVehicleType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid vehicle type",
			})
		case errors.Is(err, commands.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrSlotLocationMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot does not belong to the location",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not available",
			})
		case errors.Is(err, commands.ErrActiveBookingExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already have an active booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingEntity(created))
}

// @Summary Pay for booking
// @Description Process the mock payment and activate the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.PayBookingRequest true "Payment method"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/pay [post]
func (h *BookingHandler) PayBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	paid, err := h.bookingCommands.Pay(c.Request.Context(), id, userID, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, commands.ErrPaymentProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingEntity(paid))
}

// @Summary Cancel booking
// @Description Cancel an active booking, release the slot and refund 75 percent
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	refund, err := h.bookingCommands.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, commands.ErrBookingNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only active bookings can be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{
		Message:      "Booking cancelled",
		RefundAmount: refund,
	})
}

// @Summary Get active booking
// @Description Get the current user's active booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/active [get]
func (h *BookingHandler) GetActiveBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.ActiveByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking history
// @Description List the current user's completed and cancelled bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/history [get]
func (h *BookingHandler) GetBookingHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.HistoryByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking with its payments; owners and admins only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	isAdmin, _ := middleware.GetIsAdmin(c)

	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, payments, err := h.bookingQueries.GetByID(c.Request.Context(), id, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := resdto.BookingDetailResponse{
		BookingResponse: *resdto.FromBookingView(view),
		Payments:        resdto.FromPaymentViews(payments),
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get payment history
// @Description List the current user's charges and refunds across all bookings
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments/history [get]
func (h *BookingHandler) GetPaymentHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.PaymentsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}
