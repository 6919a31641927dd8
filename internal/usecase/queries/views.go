package queries

import (
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/notification"
	"parkspot/internal/domain/payment"
	"parkspot/internal/domain/slot"
)

// Read models composed from the entity tables at query time. Slot counts
// are always derived live, never stored.

type LocationView struct {
	ID             int64
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	PricePerHour   int64
	ImageURL       string
	Facilities     []string
	AvailableSlots int
	TotalSlots     int
}

// NearbyLocationView adds the great-circle distance from the query point.
type NearbyLocationView struct {
	LocationView
	DistanceKm float64
}

type LocationDetailView struct {
	LocationView
	Slots []SlotView
}

type SlotView struct {
	ID          int64
	LocationID  int64
	Label       string
	VehicleType slot.VehicleType
	IsAvailable bool
	LastUpdated time.Time
}

type BookingView struct {
	ID            int64
	UserID        int64
	LocationID    int64
	LocationName  string
	SlotID        int64
	SlotLabel     string
	StartDate     time.Time
	EndDate       time.Time
	DurationTier  booking.DurationTier
	VehicleType   slot.VehicleType
	Amount        int64
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	CreatedAt     time.Time
}

type PaymentView struct {
	ID             int64
	BookingID      int64
	UserID         int64
	Amount         int64
	TransactionRef string
	Method         string
	Status         payment.Status
	CreatedAt      time.Time
}

type NotificationView struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Kind      notification.Kind
	IsRead    bool
	CreatedAt time.Time
}

type UserView struct {
	ID        int64
	Phone     string
	Name      string
	IsAdmin   bool
	CreatedAt time.Time
}

type DashboardView struct {
	TotalSlots     int64
	AvailableSlots int64
	ActiveBookings int64
	TodayRevenue   int64
	RecentBookings []BookingView
}
