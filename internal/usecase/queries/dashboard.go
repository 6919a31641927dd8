package queries

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/shared"
)

const recentBookingLimit = 10

type DashboardQueries interface {
	// Stats aggregates the admin dashboard in one consistent read: slot
	// counts, active bookings, revenue collected since local midnight, and
	// the most recent bookings.
	Stats(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDashboardQueries(uow shared.UnitOfWork, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow, clock: clk}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now()
	midnight := startOfDay(now)

	var view DashboardView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots, err := tx.Slots().List(ctx)
		if err != nil {
			return err
		}
		view.TotalSlots = int64(len(slots))
		for _, s := range slots {
			if s.IsAvailable() {
				view.AvailableSlots++
			}
		}

		view.ActiveBookings, err = tx.Bookings().CountByStatus(ctx, booking.StatusActive)
		if err != nil {
			return err
		}

		view.TodayRevenue, err = tx.Bookings().RevenueSince(ctx, midnight)
		if err != nil {
			return err
		}

		recent, err := tx.Bookings().ListRecent(ctx, recentBookingLimit)
		if err != nil {
			return err
		}
		view.RecentBookings, err = buildBookingViews(ctx, tx, recent)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// startOfDay truncates to midnight in the timestamp's own location, so the
// "today" window follows the deployment timezone.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
