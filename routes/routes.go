// File: lokseva/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"lokseva/handlers"
	"lokseva/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", hb.Auth.RegisterHandler)
		auth.POST("/verify-otp", hb.Auth.VerifyOTPHandler)
		auth.POST("/resend-otp", hb.Auth.ResendOTPHandler)
		auth.POST("/login", hb.Auth.LoginHandler)
		auth.GET("/logout", hb.Auth.LogoutHandler)
		auth.GET("/me", hb.Auth.MeHandler)

		// Admin endpoints.
		admin := auth.Group("")
		admin.Use(middleware.AdminOnlyMiddleware(hb.UserService))
		admin.GET("/all-users", hb.Auth.AllUsersHandler)
		admin.PUT("/block/:userId", hb.Auth.BlockUserHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/booking")
	{
		booking.POST("/create", hb.Booking.CreateBookingHandler)
		booking.GET("/user/:userId", hb.Booking.UserBookingsHandler)
		booking.GET("/provider/:providerId", hb.Booking.ProviderBookingsHandler)
		booking.PUT("/status/:bookingId", hb.Booking.UpdateStatusHandler)
		booking.GET("/all", hb.Booking.AllBookingsHandler)
	}
}

// RegisterReviewRoutes registers the review endpoints. The all/list route is
// registered before the :providerId param route to avoid conflicts.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	review := r.Group("/review")
	{
		review.POST("/submit", hb.Review.SubmitReviewHandler)
		review.GET("/all/list", hb.Review.AllReviewsHandler)
		review.GET("/:providerId", hb.Review.ProviderReviewsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lokseva"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})
}
