package tourRepo

import (
	"time"

	"travelerapp/models"
)

// TourRepository defines data access for the tour catalog.
type TourRepository interface {
	ListTours() ([]models.Tour, error)
	GetTourByID(tourID string) (*models.Tour, error)
	GetAvailableDates(tourID string, from time.Time, limit int64) ([]models.BookingDateOption, error)
	CountReviews(tourID string) (int64, error)
}
