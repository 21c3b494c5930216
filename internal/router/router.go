// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/deppfellow/barbershop-api/internal/handler"
	"github.com/deppfellow/barbershop-api/internal/middleware"
	"github.com/deppfellow/barbershop-api/internal/model/booking"
	"github.com/deppfellow/barbershop-api/internal/model/catalog"
	"github.com/deppfellow/barbershop-api/internal/model/user"
	"github.com/deppfellow/barbershop-api/internal/server"
)

// NewRouter builds the echo instance shared by the HTTP server and the
// Lambda adapter.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler
	router.IPExtractor = ipExtractor(s.Config.Server.TrustedProxies)

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.AllowOrigin(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Record(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	// CORS policies are attached per route, not per group: group middleware
	// registers catch-all routes that would turn 405 into 404.
	bookingsCORS := middlewares.Global.CORS(middleware.BookingsCORS)
	bookings := router.Group("/bookings")
	bookings.OPTIONS("", middleware.Preflight, bookingsCORS)
	bookings.GET("", handler.Handle(h.Booking.Handler, h.Booking.ListBookings, http.StatusOK, &booking.ListBookingsQuery{}), bookingsCORS)
	bookings.POST("", handler.Handle(h.Booking.Handler, h.Booking.CreateBooking, http.StatusCreated, &booking.CreateBookingPayload{}), bookingsCORS)
	bookings.PUT("", handler.Handle(h.Booking.Handler, h.Booking.UpdateStatus, http.StatusOK, &booking.UpdateStatusPayload{}), bookingsCORS)
	bookings.DELETE("", handler.Handle(h.Booking.Handler, h.Booking.CancelBooking, http.StatusOK, &booking.CancelBookingQuery{}), bookingsCORS)

	catalogCORS := middlewares.Global.CORS(middleware.CatalogCORS)
	salons := router.Group("/salons")
	salons.OPTIONS("", middleware.Preflight, catalogCORS)
	salons.GET("", handler.Handle(h.Catalog.Handler, h.Catalog.List, http.StatusOK, &catalog.Query{}), catalogCORS)

	usersCORS := middlewares.Global.CORS(middleware.UsersCORS)
	users := router.Group("/users")
	users.OPTIONS("", middleware.Preflight, usersCORS)
	users.GET("", handler.Handle(h.User.Handler, h.User.GetUser, http.StatusOK, &user.GetUserQuery{}), usersCORS)
	users.POST("", handler.Handle(h.User.Handler, h.User.UpsertUser, http.StatusCreated, &user.UpsertUserPayload{}), usersCORS)
	users.PUT("", handler.Handle(h.User.Handler, h.User.AdjustBonusPoints, http.StatusOK, &user.AdjustBonusPayload{}), usersCORS)

	return router
}
