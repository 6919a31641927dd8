package response

import (
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/usecase/queries"
)

type BookingResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	LocationID    int64     `json:"locationId"`
	LocationName  string    `json:"locationName,omitempty"`
	SlotID        int64     `json:"slotId"`
	SlotLabel     string    `json:"slotLabel,omitempty"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	DurationTier  int       `json:"durationTier"`
	VehicleType   string    `json:"vehicleType"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payments []*PaymentResponse `json:"payments"`
}

type PaymentResponse struct {
	ID             int64     `json:"id"`
	BookingID      int64     `json:"bookingId"`
	Amount         int64     `json:"amount"`
	TransactionRef string    `json:"transactionRef"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CancelBookingResponse struct {
	Message      string `json:"message"`
	RefundAmount int64  `json:"refundAmount"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            view.ID,
		UserID:        view.UserID,
		LocationID:    view.LocationID,
		LocationName:  view.LocationName,
		SlotID:        view.SlotID,
		SlotLabel:     view.SlotLabel,
		StartDate:     view.StartDate,
		EndDate:       view.EndDate,
		DurationTier:  int(view.DurationTier),
		VehicleType:   view.VehicleType.String(),
		Amount:        view.Amount,
		Status:        view.Status.String(),
		PaymentStatus: view.PaymentStatus.String(),
		CreatedAt:     view.CreatedAt,
	}
}

func FromBookingViews(views []queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i := range views {
		out[i] = FromBookingView(&views[i])
	}
	return out
}

func FromPaymentViews(views []queries.PaymentView) []*PaymentResponse {
	out := make([]*PaymentResponse, len(views))
	for i := range views {
		out[i] = FromPaymentView(&views[i])
	}
	return out
}

func FromPaymentView(view *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:             view.ID,
		BookingID:      view.BookingID,
		Amount:         view.Amount,
		TransactionRef: view.TransactionRef,
		Method:         view.Method,
		Status:         view.Status.String(),
		CreatedAt:      view.CreatedAt,
	}
}

// FromBookingEntity serves the write endpoints, which return the booking
// they just created or transitioned without the joined labels.
func FromBookingEntity(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		UserID:        b.UserID(),
		LocationID:    b.LocationID(),
		SlotID:        b.SlotID(),
		StartDate:     b.StartDate(),
		EndDate:       b.EndDate(),
		DurationTier:  int(b.DurationTier()),
		VehicleType:   b.VehicleType().String(),
		Amount:        b.Amount(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
	}
}
