package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Tour endpoints.
	ListToursHandler      gin.HandlerFunc
	GetTourHandler        gin.HandlerFunc
	GetReviewCountHandler gin.HandlerFunc

	// Booking endpoints.
	GetDateOptionsHandler gin.HandlerFunc
	QuotePriceHandler     gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	MyBookingsHandler     gin.HandlerFunc

	// Payment endpoints.
	GetPaymentDetailsHandler gin.HandlerFunc
	StreamCountdownHandler   gin.HandlerFunc
	ConfirmPaymentHandler    gin.HandlerFunc

	// User endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	UploadAvatarHandler  gin.HandlerFunc
}
