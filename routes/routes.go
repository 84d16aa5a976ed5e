package routes

import (
	"net/http"
	"time"

	"travelerapp/handlers"
	"travelerapp/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTourRoutes registers the public tour catalog endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.ListToursHandler)
		api.GET("/:id", hb.GetTourHandler)
		api.GET("/:id/reviews/count", hb.GetReviewCountHandler)
		api.GET("/:id/dates", hb.GetDateOptionsHandler)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Quoting needs no session; creating and reading bookings does.
		api.POST("/quote", hb.QuotePriceHandler)

		protected := api.Group("")
		protected.Use(middleware.FirebaseAuthMiddleware())
		protected.POST("", hb.CreateBookingHandler)
		protected.GET("", hb.MyBookingsHandler)
		protected.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterPaymentRoutes registers the payment step endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/:id", hb.GetPaymentDetailsHandler)
		api.GET("/:id/countdown", hb.StreamCountdownHandler)
		api.POST("/:id/confirm", hb.ConfirmPaymentHandler)
	}
}

// RegisterUserRoutes registers traveler profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.POST("/me/avatar", hb.UploadAvatarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "travelerapp up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTourRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
