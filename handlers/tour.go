package handlers

import (
	"net/http"

	"travelerapp/services/tour"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
)

// TourHandler serves the tour catalog.
type TourHandler struct {
	Service tour.TourService
}

func NewTourHandler(svc tour.TourService) *TourHandler {
	return &TourHandler{Service: svc}
}

// ListToursHandler returns the catalog, optionally filtered by the "q"
// query parameter. This endpoint never fails: the service degrades to
// cached or seed data on remote errors.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	query := c.Query("q")
	if query != "" {
		c.JSON(http.StatusOK, gin.H{"tours": h.Service.SearchTours(query)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": h.Service.ListTours()})
}

// GetTourHandler returns a single tour by id.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	tourID := c.Param("id")
	t, err := h.Service.GetTour(tourID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Tour not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// GetReviewCountHandler returns the review count for a tour.
func (h *TourHandler) GetReviewCountHandler(c *gin.Context) {
	tourID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"tourId":      tourID,
		"reviewCount": h.Service.ReviewCount(tourID),
	})
}
