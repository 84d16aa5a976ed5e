package tour

import (
	"travelerapp/models"
)

// TourService exposes the tour catalog to the rest of the workflow.
type TourService interface {
	// ListTours never fails: remote read errors degrade to cached data,
	// then to the static seed catalog.
	ListTours() []models.Tour
	SearchTours(query string) []models.Tour
	// GetTour surfaces failures; there is no substitute for a missing
	// single tour.
	GetTour(tourID string) (*models.Tour, error)
	ReviewCount(tourID string) int64
}
