package bookingRepo

import (
	"context"
	"time"

	"travelerapp/models"
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// CreateBooking inserts the booking and returns the store-assigned
	// identifier. Writing the identifier back onto the record is best
	// effort and never fails the creation.
	CreateBooking(booking *models.Booking) (string, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBookingsByUser(userID string) ([]models.Booking, error)
	// ConfirmPayment transitions pending -> completed, stamping paidAt.
	// Returns false with a nil error when the booking was already
	// completed (idempotent no-op).
	ConfirmPayment(bookingID string, paidAt time.Time) (bool, error)
	// MarkExpired transitions pending -> expired. Bookings in any other
	// state are left untouched.
	MarkExpired(bookingID string) error
}
