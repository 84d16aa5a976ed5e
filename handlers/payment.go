package handlers

import (
	"io"
	"net/http"
	"time"

	"travelerapp/services/payment"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment step.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// GetPaymentDetailsHandler returns the derived payment view for a
// booking, including the deadline and remaining time.
func (h *PaymentHandler) GetPaymentDetailsHandler(c *gin.Context) {
	bookingID := c.Param("id")
	details, err := h.Service.GetPaymentDetails(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to load payment details", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment":       details,
		"remaining":     payment.FormatRemaining(remainingDuration(details.RemainingSeconds)),
		"urgent":        remainingDuration(details.RemainingSeconds) < payment.UrgentThreshold,
		"tourDuration":  details.TourDuration,
		"paymentStatus": details.PaymentStatus,
	})
}

func remainingDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// StreamCountdownHandler streams the payment countdown as server-sent
// events, one tick per second until the deadline passes or the client
// disconnects. The terminal expired tick closes the stream.
func (h *PaymentHandler) StreamCountdownHandler(c *gin.Context) {
	bookingID := c.Param("id")
	details, err := h.Service.GetPaymentDetails(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to load payment details", err.Error())
		return
	}

	countdown := payment.NewCountdown(details.PaymentDeadline)
	countdown.Start()
	defer countdown.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case tick := <-countdown.Ticks():
			c.SSEvent("tick", gin.H{
				"remaining":        tick.Display,
				"remainingSeconds": int64(tick.Remaining / time.Second),
				"urgent":           tick.Urgent,
				"expired":          tick.Expired,
			})
			return !tick.Expired
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// ConfirmPaymentHandler marks the booking's payment complete.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	bookingID := c.Param("id")
	details, err := h.Service.ConfirmPayment(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Payment confirmation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, details)
}
