package booking

import (
	"time"

	bookingRepo "travelerapp/database/repository/booking"
	tourRepo "travelerapp/database/repository/tour"
	userRepo "travelerapp/database/repository/user"
	"travelerapp/models"
)

// BookingService drives the booking workflow: date options, pricing and
// persistence of the finalized draft.
type BookingService interface {
	// GetDateOptions never fails: remote read problems fall back to the
	// synthetic generator. The first option comes back selected.
	GetDateOptions(tourID string) []models.BookingDateOption
	// QuotePrice computes the total for booking the given date option
	// with the given visitor count. Unknown options quote 0.
	QuotePrice(tourID, dateOptionID string, visitorCount int) float64
	CreateBooking(user *models.AuthUser, details *models.BookingDetails) (*models.Booking, error)
	GetBooking(bookingID string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
}

// ExpiryScheduler schedules the payment-deadline expiry task for a
// freshly created booking. Implemented by the cron package.
type ExpiryScheduler interface {
	ScheduleExpiry(bookingID string, at time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	TourRepo    tourRepo.TourRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Expiry      ExpiryScheduler

	// DeadlineWindow is how long after creation a booking may stay
	// unpaid before it expires.
	DeadlineWindow time.Duration

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
