package payment

import (
	"context"
	"time"

	"travelerapp/models"
	"travelerapp/utils"

	"go.uber.org/zap"
)

// defaultTourSpan is assumed when the tour document carries no duration.
// Day counting is inclusive of both endpoints, so a two-day span reads
// as a three-day tour.
const defaultTourSpan = 2 * 24 * time.Hour

// GetPaymentDetails loads the booking and derives the payment view:
// deadline, remaining time and tour duration. A missing booking is
// surfaced; the tour-duration enrichment is best effort.
func (svc *DefaultPaymentService) GetPaymentDetails(ctx context.Context, bookingID string) (*models.PaymentDetails, error) {
	booking, err := svc.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return svc.detailsFrom(booking), nil
}

// ConfirmPayment marks the booking's payment complete. Failures leave
// the status unchanged and are surfaced; the caller may simply retry.
func (svc *DefaultPaymentService) ConfirmPayment(ctx context.Context, bookingID string) (*models.PaymentDetails, error) {
	paidAt := svc.now()
	transitioned, err := svc.BookingRepo.ConfirmPayment(bookingID, paidAt)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		utils.GetLogger().Info("payment already confirmed",
			zap.String("bookingId", bookingID))
	}

	booking, err := svc.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return svc.detailsFrom(booking), nil
}

func (svc *DefaultPaymentService) detailsFrom(booking *models.Booking) *models.PaymentDetails {
	details := &models.PaymentDetails{
		BookingID:         booking.ID,
		TourID:            booking.TourID,
		TourName:          booking.TourName,
		TourStartDate:     booking.TourDateStart,
		TourEndDate:       booking.TourDateStart.Add(defaultTourSpan),
		NumberOfTravelers: booking.NumberOfPerson,
		TotalAmount:       booking.TotalPrice,
		Currency:          "VND",
		PaymentDeadline:   booking.CreatedAt.Add(svc.DeadlineWindow),
		PaymentStatus:     booking.PaymentStatus,
	}
	details.UpdateRemaining(svc.now())

	details.TourDuration = details.FormattedDuration()
	if svc.TourRepo != nil && booking.TourID != "" {
		if t, err := svc.TourRepo.GetTourByID(booking.TourID); err == nil && t.Duration != "" {
			details.TourDuration = t.Duration
		}
	}

	return details
}
