package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"travelerapp/config"
	"travelerapp/models"
)

// fakeTourRepo serves canned date options, or an error.
type fakeTourRepo struct {
	dates []models.BookingDateOption
	err   error

	tour    *models.Tour
	tourErr error
}

func (f *fakeTourRepo) ListTours() ([]models.Tour, error) { return nil, nil }

func (f *fakeTourRepo) GetTourByID(tourID string) (*models.Tour, error) {
	if f.tourErr != nil {
		return nil, f.tourErr
	}
	return f.tour, nil
}

func (f *fakeTourRepo) GetAvailableDates(tourID string, from time.Time, limit int64) ([]models.BookingDateOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dates, nil
}

func (f *fakeTourRepo) CountReviews(tourID string) (int64, error) { return 0, nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func setPricingConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig.DefaultTourPrice = 775000
	config.AppConfig.WeekendMultiplier = 1.2
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGetDateOptionsGeneratesDefaultsOnError(t *testing.T) {
	setPricingConfig(t)

	// A Wednesday, so the generated week covers one full weekend.
	now := time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	svc := &DefaultBookingService{
		TourRepo: &fakeTourRepo{err: errors.New("store down")},
		Now:      fixedClock(now),
	}

	options := svc.GetDateOptions("tour-1")
	if len(options) != 7 {
		t.Fatalf("expected 7 generated options, got %d", len(options))
	}

	wantDay := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	for i, opt := range options {
		if !opt.Date.Equal(wantDay) {
			t.Errorf("option %d: date = %v, want %v", i, opt.Date, wantDay)
		}
		wantID := fmt.Sprintf("tour-1_%s", wantDay.Format("2006-01-02"))
		if opt.ID != wantID {
			t.Errorf("option %d: id = %q, want %q", i, opt.ID, wantID)
		}
		if opt.DayOfWeek != int(wantDay.Weekday()) {
			t.Errorf("option %d: dayOfWeek = %d, want %d", i, opt.DayOfWeek, int(wantDay.Weekday()))
		}
		if opt.Holiday {
			t.Errorf("option %d: generated options are never holidays", i)
		}
		if !opt.Available {
			t.Errorf("option %d: generated options must be available", i)
		}

		wantPrice := 775000.0
		if opt.DayOfWeek == 0 || opt.DayOfWeek == 6 {
			wantPrice = 775000 * 1.2
		}
		if opt.Price != wantPrice {
			t.Errorf("option %d (%s): price = %v, want %v", i, opt.DayName(), opt.Price, wantPrice)
		}

		wantDay = wantDay.AddDate(0, 0, 1)
	}

	if !options[0].Selected {
		t.Error("first option must come back selected")
	}
	for i := 1; i < len(options); i++ {
		if options[i].Selected {
			t.Errorf("option %d must not be selected", i)
		}
	}
}

func TestGetDateOptionsGeneratesDefaultsWhenEmpty(t *testing.T) {
	setPricingConfig(t)

	svc := &DefaultBookingService{
		TourRepo: &fakeTourRepo{},
		Now:      fixedClock(time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)),
	}

	options := svc.GetDateOptions("tour-1")
	if len(options) != 7 {
		t.Fatalf("expected fallback generation, got %d options", len(options))
	}
}

func TestGetDateOptionsUsesRemoteData(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	remote := []models.BookingDateOption{
		{ID: "tour-1_2026-09-03", Date: day(0), DayOfWeek: 4, Price: 800000},
		{ID: "tour-1_2026-09-04", Date: day(1), DayOfWeek: 5, Price: 800000},
		{ID: "tour-1_2026-09-05", Date: day(2), DayOfWeek: 6, Price: 960000},
	}

	svc := &DefaultBookingService{
		TourRepo: &fakeTourRepo{dates: remote},
		Now:      fixedClock(time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)),
	}

	options := svc.GetDateOptions("tour-1")
	if len(options) != 3 {
		t.Fatalf("expected 3 remote options, got %d", len(options))
	}
	if !options[0].Selected {
		t.Error("first remote option must come back selected")
	}
	for i := range options {
		if options[i].ID != remote[i].ID {
			t.Errorf("option %d: order not preserved, got %q", i, options[i].ID)
		}
	}
}

func TestSelectKeepsExactlyOneSelection(t *testing.T) {
	options := []models.BookingDateOption{
		{ID: "a", Selected: true},
		{ID: "b"},
		{ID: "c"},
	}

	updated := Select(options, 2)

	if options[0].Selected != true {
		t.Error("Select must not mutate its input")
	}
	for i, opt := range updated {
		want := i == 2
		if opt.Selected != want {
			t.Errorf("option %d: selected = %v, want %v", i, opt.Selected, want)
		}
	}

	sel := SelectedOption(updated)
	if sel == nil || sel.ID != "c" {
		t.Fatalf("SelectedOption = %v, want c", sel)
	}
}

func TestSelectOutOfRangeDeselectsAll(t *testing.T) {
	options := []models.BookingDateOption{{ID: "a", Selected: true}, {ID: "b"}}

	updated := Select(options, 5)
	if SelectedOption(updated) != nil {
		t.Error("out-of-range index must leave nothing selected")
	}
}
