package response

import (
	"parkspot/internal/usecase/queries"
)

type DashboardResponse struct {
	TotalSlots     int64              `json:"totalSlots"`
	AvailableSlots int64              `json:"availableSlots"`
	ActiveBookings int64              `json:"activeBookings"`
	TodayRevenue   int64              `json:"todayRevenue"`
	RecentBookings []*BookingResponse `json:"recentBookings"`
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		TotalSlots:     view.TotalSlots,
		AvailableSlots: view.AvailableSlots,
		ActiveBookings: view.ActiveBookings,
		TodayRevenue:   view.TodayRevenue,
		RecentBookings: FromBookingViews(view.RecentBookings),
	}
}
