package booking

import (
	"context"

	"travelerapp/models"
	"travelerapp/utils"

	"go.uber.org/zap"
)

// CreateBooking validates the draft and persists it. The transition to a
// persisted booking requires an authenticated user, a tour id and a
// start date; any violation yields a ValidationError before a single
// write is made. The total price is never taken from the draft: it is
// rederived from the resolved date option and the visitor count, so a
// tampered or stale client value cannot reach the store.
func (svc *DefaultBookingService) CreateBooking(user *models.AuthUser, details *models.BookingDetails) (*models.Booking, error) {
	if user == nil || user.UID == "" {
		return nil, NewValidationError("user", "user is not authenticated")
	}
	if details == nil || details.TourID == "" {
		return nil, NewValidationError("tourId", "missing tour id")
	}
	if details.BookingDate.IsZero() {
		return nil, NewValidationError("bookingDate", "missing start date")
	}

	visitorCount := details.VisitorCount
	if visitorCount < 1 {
		visitorCount = 1
	}

	selected, err := svc.resolveDateOption(details)
	if err != nil {
		return nil, err
	}
	totalPrice := CalculateTotal(selected, visitorCount)

	contactName := details.ContactName
	if contactName == "" {
		contactName = user.DisplayName
	}
	contactEmail := details.ContactEmail
	if contactEmail == "" {
		contactEmail = user.Email
	}

	now := svc.now()
	record := &models.Booking{
		UserID:                 user.UID,
		ParticipantName:        contactName,
		ParticipantEmail:       contactEmail,
		ParticipantPhoneNumber: details.ContactPhone,
		TourID:                 details.TourID,
		TourName:               details.TourName,
		TourDateStart:          selected.Date,
		NumberOfPerson:         visitorCount,
		TotalPrice:             totalPrice,
		PaymentStatus:          models.PaymentPending,
		CreatedAt:              now,
	}

	bookingID, err := svc.BookingRepo.CreateBooking(record)
	if err != nil {
		return nil, err
	}
	record.ID = bookingID

	logger := utils.GetLogger()

	if svc.UserRepo != nil {
		if err := svc.UserRepo.AddBookingRef(user.UID, bookingID); err != nil {
			logger.Warn("failed to record booking on user profile",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
	}

	if svc.Expiry != nil {
		deadline := now.Add(svc.DeadlineWindow)
		if err := svc.Expiry.ScheduleExpiry(bookingID, deadline); err != nil {
			logger.Warn("failed to schedule payment expiry",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
	}

	return record, nil
}

// GetBooking looks a booking up by id. There is no substitute for a
// missing booking, so failures are surfaced.
func (svc *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	return svc.BookingRepo.GetBookingByID(context.Background(), bookingID)
}

// GetUserBookings lists the bookings made by a user.
func (svc *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return svc.BookingRepo.GetBookingsByUser(userID)
}
