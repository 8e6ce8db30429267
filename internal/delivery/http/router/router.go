// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"dashboard/internal/delivery/http/middleware"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	TripHandler         *handler.TripHandler
	PaymentHandler      *handler.PaymentHandler
	BannerHandler       *handler.BannerHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	CatalogHandler      *handler.CatalogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Handle)
	e.Use(r.params.LoggerMiddleware.Handle)

	e.GET("/health", handler.HealthCheck)

	// The login screen itself: anonymous, echoes the post-login target.
	e.GET("/login", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{
			"next": c.QueryParam("next"),
		}, "Sign in to access the dashboard")
	})

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Session lifecycle behind the guard.
	sessionGroup := e.Group("", r.params.AuthMiddleware.RequireSession)
	{
		sessionGroup.POST("/logout", r.params.AuthHandler.Logout)
		sessionGroup.GET("/session", r.params.AuthHandler.Session)
		sessionGroup.POST("/session/refresh", r.params.AuthHandler.RefreshProfile)
		sessionGroup.PUT("/session/profile", r.params.AuthHandler.UpdateProfile)
	}

	// Signed-in, non-admin surface.
	apiGroup := e.Group("/api", r.params.AuthMiddleware.RequireSession)
	{
		notifications := apiGroup.Group("/notifications")
		notifications.GET("", r.params.NotificationHandler.List)
		notifications.GET("/unread-count", r.params.NotificationHandler.UnreadCount)
		notifications.PUT("/read-all", r.params.NotificationHandler.MarkAllRead)
		notifications.PUT("/:id/read", r.params.NotificationHandler.MarkRead)
		notifications.DELETE("/clear-read", r.params.NotificationHandler.ClearRead)
		notifications.DELETE("/:id", r.params.NotificationHandler.Delete)
	}

	// Admin screens: a signed-in non-admin gets the 403 in place.
	adminGroup := apiGroup.Group("", r.params.AuthMiddleware.RequireAdmin)
	{
		adminGroup.GET("/stats", r.params.AnalyticsHandler.Stats)
		adminGroup.GET("/analytics/report", r.params.AnalyticsHandler.Report)

		users := adminGroup.Group("/users")
		users.GET("", r.params.UserHandler.List)
		users.PUT("/:id", r.params.UserHandler.Update)
		users.PUT("/:id/activate", r.params.UserHandler.Activate)
		users.PUT("/:id/verify", r.params.UserHandler.Verify)
		users.DELETE("/:id", r.params.UserHandler.Deactivate)

		trips := adminGroup.Group("/trips")
		trips.GET("", r.params.TripHandler.ListTrips)
		trips.GET("/:id/similar", r.params.TripHandler.SimilarTrips)
		trips.PUT("/:id/cancel", r.params.TripHandler.CancelTrip)
		trips.DELETE("/:id", r.params.TripHandler.DeleteTrip)

		bookings := adminGroup.Group("/bookings")
		bookings.GET("", r.params.TripHandler.ListBookings)
		bookings.PUT("/:id/cancel", r.params.TripHandler.CancelBooking)

		payments := adminGroup.Group("/payments")
		payments.GET("", r.params.PaymentHandler.ListPayments)
		payments.GET("/summary", r.params.PaymentHandler.PaymentSummary)
		payments.POST("", r.params.PaymentHandler.CreatePayment)
		payments.PUT("/:id/confirm", r.params.PaymentHandler.ConfirmPayment)
		payments.PUT("/:id/refund", r.params.PaymentHandler.RefundPayment)

		commissions := adminGroup.Group("/commissions")
		commissions.GET("", r.params.PaymentHandler.ListCommissions)
		commissions.GET("/summary", r.params.PaymentHandler.CommissionSummary)
		commissions.POST("/calculate", r.params.PaymentHandler.CalculateCommissions)
		commissions.POST("/send-notifications", r.params.PaymentHandler.SendCommissionNotifications)
		commissions.PUT("/:id/waive", r.params.PaymentHandler.WaiveCommission)

		banners := adminGroup.Group("/banners")
		banners.GET("/package/:packageId", r.params.BannerHandler.ListByPackage)
		banners.GET("/stats/:packageId", r.params.BannerHandler.Stats)
		banners.PATCH("/reorder/:packageId", r.params.BannerHandler.Reorder)
		banners.POST("", r.params.BannerHandler.Create)
		banners.GET("/:id", r.params.BannerHandler.Get)
		banners.PUT("/:id", r.params.BannerHandler.Update)
		banners.DELETE("/:id", r.params.BannerHandler.Delete)
		banners.PATCH("/:id/toggle-status", r.params.BannerHandler.ToggleStatus)
		banners.POST("/:id/register-view", r.params.BannerHandler.RegisterView)
		banners.POST("/:id/register-click", r.params.BannerHandler.RegisterClick)
		banners.GET("/:id/qr", r.params.BannerHandler.QRPreview)

		vehicles := adminGroup.Group("/vehicles")
		vehicles.GET("/:id", r.params.CatalogHandler.GetVehicle)
		vehicles.PUT("/:id", r.params.CatalogHandler.UpdateVehicle)
		vehicles.DELETE("/:id", r.params.CatalogHandler.DeleteVehicle)

		reviews := adminGroup.Group("/reviews")
		reviews.GET("/user/:id", r.params.CatalogHandler.ReviewsByUser)
		reviews.GET("/trip/:id", r.params.CatalogHandler.ReviewsByTrip)
		reviews.DELETE("/:id", r.params.CatalogHandler.DeleteReview)
	}
}
