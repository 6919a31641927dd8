package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	parkingHandler *api.ParkingHandler,
	bookingHandler *api.BookingHandler,
	notificationHandler *api.NotificationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, parkingHandler, bookingHandler, notificationHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	parkingHandler *api.ParkingHandler,
	bookingHandler *api.BookingHandler,
	notificationHandler *api.NotificationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/otp/request", Handler: authHandler.RequestCode},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: authHandler.VerifyCode},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		parking := apiGroup.Group("/parking")
		{
			addRoutes(parking, []route{
				{Method: http.MethodGet, Path: "/locations", Handler: parkingHandler.ListLocations},
				{Method: http.MethodGet, Path: "/locations/:id", Handler: parkingHandler.GetLocation},
				{Method: http.MethodGet, Path: "/locations/:id/slots", Handler: parkingHandler.ListSlots},
				{Method: http.MethodGet, Path: "/nearby", Handler: parkingHandler.ListNearby},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/active", Handler: bookingHandler.GetActiveBooking},
				{Method: http.MethodGet, Path: "/history", Handler: bookingHandler.GetBookingHistory},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: bookingHandler.PayBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/history", Handler: bookingHandler.GetPaymentHistory},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListNotifications},
				{Method: http.MethodPost, Path: "/read", Handler: notificationHandler.MarkAllRead},
				{Method: http.MethodPost, Path: "/:id/read", Handler: notificationHandler.MarkRead},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/locations", Handler: adminHandler.CreateLocation},
				{Method: http.MethodPut, Path: "/locations/:id", Handler: adminHandler.UpdateLocation},
				{Method: http.MethodDelete, Path: "/locations/:id", Handler: adminHandler.DeleteLocation},
				{Method: http.MethodPost, Path: "/locations/:id/slots", Handler: adminHandler.CreateSlot},
				{Method: http.MethodPut, Path: "/slots/:id", Handler: adminHandler.UpdateSlot},
				{Method: http.MethodDelete, Path: "/slots/:id", Handler: adminHandler.DeleteSlot},
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/dashboard", Handler: adminHandler.Dashboard},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
