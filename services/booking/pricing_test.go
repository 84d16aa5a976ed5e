package booking

import (
	"testing"
	"time"

	"travelerapp/models"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		selected *models.BookingDateOption
		visitors int
		want     float64
	}{
		{"no selection", nil, 3, 0},
		{"weekday single visitor", &models.BookingDateOption{Price: 775000}, 1, 775000},
		{"weekend three visitors", &models.BookingDateOption{Price: 775000 * 1.2}, 3, 2790000},
		{"zero visitors", &models.BookingDateOption{Price: 775000}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateTotal(tc.selected, tc.visitors); got != tc.want {
				t.Errorf("CalculateTotal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuotePrice(t *testing.T) {
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	remote := []models.BookingDateOption{
		{ID: "tour-1_2026-09-03", Date: day, DayOfWeek: 4, Price: 800000},
		{ID: "tour-1_2026-09-05", Date: day.AddDate(0, 0, 2), DayOfWeek: 6, Price: 960000},
	}

	svc := &DefaultBookingService{
		TourRepo: &fakeTourRepo{dates: remote},
		Now:      fixedClock(time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)),
	}

	if got := svc.QuotePrice("tour-1", "tour-1_2026-09-05", 2); got != 1920000 {
		t.Errorf("weekend quote = %v, want 1920000", got)
	}
	if got := svc.QuotePrice("tour-1", "tour-1_2026-09-03", 1); got != 800000 {
		t.Errorf("weekday quote = %v, want 800000", got)
	}
	if got := svc.QuotePrice("tour-1", "no-such-option", 4); got != 0 {
		t.Errorf("unknown option quote = %v, want 0", got)
	}
}
