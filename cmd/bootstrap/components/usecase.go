package components

import (
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewParkingCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewParkingQueries,
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, clk, cfg.OTP)
}
