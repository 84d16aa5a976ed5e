package payment

import (
	"context"
	"time"

	bookingRepo "travelerapp/database/repository/booking"
	tourRepo "travelerapp/database/repository/tour"
	"travelerapp/models"
)

// PaymentService exposes the payment step of the booking workflow.
type PaymentService interface {
	GetPaymentDetails(ctx context.Context, bookingID string) (*models.PaymentDetails, error)
	// ConfirmPayment transitions pending -> completed. Confirming an
	// already-completed booking is a no-op success and never rewrites
	// the payment date.
	ConfirmPayment(ctx context.Context, bookingID string) (*models.PaymentDetails, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	BookingRepo bookingRepo.BookingRepository
	TourRepo    tourRepo.TourRepository

	// DeadlineWindow is how long after booking creation the payment
	// deadline falls.
	DeadlineWindow time.Duration

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultPaymentService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
