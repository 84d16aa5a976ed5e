package handlers

import (
	"errors"
	"net/http"

	"travelerapp/middleware"
	"travelerapp/models"
	"travelerapp/services/booking"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking workflow endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetDateOptionsHandler returns the candidate dates for a tour. The
// first option is selected by default.
func (h *BookingHandler) GetDateOptionsHandler(c *gin.Context) {
	tourID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"tourId":      tourID,
		"dateOptions": h.Service.GetDateOptions(tourID),
	})
}

// QuotePriceHandler computes the total price for a date option and
// visitor count.
func (h *BookingHandler) QuotePriceHandler(c *gin.Context) {
	var input struct {
		TourID       string `json:"tourId" binding:"required"`
		DateOptionID string `json:"dateOptionId" binding:"required"`
		VisitorCount int    `json:"visitorCount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.VisitorCount < 1 {
		input.VisitorCount = 1
	}

	total := h.Service.QuotePrice(input.TourID, input.DateOptionID, input.VisitorCount)
	c.JSON(http.StatusOK, gin.H{
		"tourId":       input.TourID,
		"dateOptionId": input.DateOptionID,
		"visitorCount": input.VisitorCount,
		"totalPrice":   total,
	})
}

// CreateBookingHandler persists a finalized booking draft for the
// authenticated user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	record, err := h.Service.CreateBooking(user, &details)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "Booking validation failed", vErr.Error())
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetBookingHandler returns a booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	record, err := h.Service.GetBooking(bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// MyBookingsHandler lists the authenticated user's bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	bookings, err := h.Service.GetUserBookings(user.UID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
