package booking

import "travelerapp/models"

// CalculateTotal derives the booking total from the selected date's
// price and the visitor count. With no selected date the total is 0.
// The result is exact; display formatting is the caller's concern.
func CalculateTotal(selected *models.BookingDateOption, visitorCount int) float64 {
	if selected == nil {
		return 0
	}
	return selected.Price * float64(visitorCount)
}

// QuotePrice resolves the date option within the tour's current option
// list, selects it, and computes the total.
func (svc *DefaultBookingService) QuotePrice(tourID, dateOptionID string, visitorCount int) float64 {
	options := svc.GetDateOptions(tourID)
	index := -1
	for i := range options {
		if options[i].ID == dateOptionID {
			index = i
			break
		}
	}
	if index < 0 {
		return 0
	}
	selected := SelectedOption(Select(options, index))
	return CalculateTotal(selected, visitorCount)
}
