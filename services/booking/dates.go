package booking

import (
	"fmt"
	"time"

	"travelerapp/config"
	"travelerapp/models"
	"travelerapp/utils"

	"go.uber.org/zap"
)

const (
	// remoteDateWindow bounds how many upcoming dates are read from the
	// document store.
	remoteDateWindow = 14
	// defaultDateCount is how many synthetic days are generated when no
	// remote data exists.
	defaultDateCount = 7
)

// GetDateOptions produces the ordered list of candidate dates for a
// tour, ascending by date, with the first option selected. Remote data
// covers up to 14 days; when the store has nothing, or the read fails,
// 7 synthetic days starting today are generated instead. This step
// never surfaces an error.
func (svc *DefaultBookingService) GetDateOptions(tourID string) []models.BookingDateOption {
	today := startOfDay(svc.now())

	options, err := svc.TourRepo.GetAvailableDates(tourID, today, remoteDateWindow)
	if err != nil {
		utils.GetLogger().Warn("available dates read failed, generating defaults",
			zap.String("tourId", tourID), zap.Error(err))
		return svc.generateDefaultDates(tourID)
	}
	if len(options) == 0 {
		return svc.generateDefaultDates(tourID)
	}

	return Select(options, 0)
}

// generateDefaultDates builds defaultDateCount consecutive days starting
// today. Weekend days carry the configured markup, holidays default to
// false, and the first day is selected.
func (svc *DefaultBookingService) generateDefaultDates(tourID string) []models.BookingDateOption {
	basePrice := config.AppConfig.DefaultTourPrice
	multiplier := config.AppConfig.WeekendMultiplier

	day := startOfDay(svc.now())
	options := make([]models.BookingDateOption, 0, defaultDateCount)
	for i := 0; i < defaultDateCount; i++ {
		dayOfWeek := int(day.Weekday())

		price := basePrice
		if dayOfWeek == 0 || dayOfWeek == 6 {
			price = basePrice * multiplier
		}

		options = append(options, models.BookingDateOption{
			ID:        fmt.Sprintf("%s_%s", tourID, day.Format("2006-01-02")),
			Date:      day,
			DayOfWeek: dayOfWeek,
			Price:     price,
			Holiday:   false,
			Available: true,
		})

		day = day.AddDate(0, 0, 1)
	}

	return Select(options, 0)
}

// Select returns a copy of options with exactly the option at index
// selected and every other option deselected. An out-of-range index
// deselects everything. The input slice is never mutated, so stale
// references cannot alias a half-updated selection.
func Select(options []models.BookingDateOption, index int) []models.BookingDateOption {
	out := make([]models.BookingDateOption, len(options))
	copy(out, options)
	for i := range out {
		out[i].Selected = i == index
	}
	return out
}

// resolveDateOption locates the draft's date option within the tour's
// current option list, by id when the draft carries one, otherwise by
// calendar day. A draft pointing at no current option cannot be priced
// and is rejected.
func (svc *DefaultBookingService) resolveDateOption(details *models.BookingDetails) (*models.BookingDateOption, error) {
	options := svc.GetDateOptions(details.TourID)
	for i := range options {
		if details.DateOptionID != "" {
			if options[i].ID == details.DateOptionID {
				return &options[i], nil
			}
			continue
		}
		if sameDay(options[i].Date, details.BookingDate) {
			return &options[i], nil
		}
	}
	return nil, NewValidationError("dateOptionId", "date option not available for this tour")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SelectedOption returns the selected option, or nil when none is.
func SelectedOption(options []models.BookingDateOption) *models.BookingDateOption {
	for i := range options {
		if options[i].Selected {
			return &options[i]
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
