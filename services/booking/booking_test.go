package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelerapp/models"
)

// fakeBookingRepo records writes so tests can assert on them.
type fakeBookingRepo struct {
	created   []*models.Booking
	createErr error
	nextID    string
}

func (f *fakeBookingRepo) CreateBooking(b *models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, b)
	return f.nextID, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) GetBookingsByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ConfirmPayment(id string, paidAt time.Time) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) MarkExpired(id string) error { return nil }

// fakeUserRepo records booking references added to profiles.
type fakeUserRepo struct {
	refs map[string][]string
	err  error
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) { return nil, errors.New("none") }
func (f *fakeUserRepo) UpsertUser(u *models.User) error             { return nil }
func (f *fakeUserRepo) SetAvatarURL(id, url string) error           { return nil }

func (f *fakeUserRepo) AddBookingRef(userID, bookingID string) error {
	if f.err != nil {
		return f.err
	}
	if f.refs == nil {
		f.refs = map[string][]string{}
	}
	f.refs[userID] = append(f.refs[userID], bookingID)
	return nil
}

// fakeScheduler records expiry scheduling requests.
type fakeScheduler struct {
	scheduled map[string]time.Time
	err       error
}

func (f *fakeScheduler) ScheduleExpiry(bookingID string, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	if f.scheduled == nil {
		f.scheduled = map[string]time.Time{}
	}
	f.scheduled[bookingID] = at
	return nil
}

func validDetails() *models.BookingDetails {
	return &models.BookingDetails{
		TourID:       "tour-1",
		TourName:     "Sapa Trekking Adventure",
		DateOptionID: "tour-1_2026-09-12",
		BookingDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		VisitorCount: 3,
		TotalPrice:   2790000,
		ContactName:  "Linh Tran",
		ContactEmail: "linh@example.com",
		ContactPhone: "+84 90 000 0000",
	}
}

// saturdayOptions covers the draft's start date; September 12th 2026 is
// a Saturday, so its price carries the weekend markup.
func saturdayOptions() *fakeTourRepo {
	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return &fakeTourRepo{dates: []models.BookingDateOption{
		{ID: "tour-1_2026-09-11", Date: saturday.AddDate(0, 0, -1), DayOfWeek: 5, Price: 775000},
		{ID: "tour-1_2026-09-12", Date: saturday, DayOfWeek: 6, Price: 930000},
	}}
}

func TestCreateBookingValidation(t *testing.T) {
	authed := &models.AuthUser{UID: "user-1", Email: "linh@example.com"}

	tests := []struct {
		name    string
		user    *models.AuthUser
		details *models.BookingDetails
		field   string
	}{
		{"nil user", nil, validDetails(), "user"},
		{"empty uid", &models.AuthUser{}, validDetails(), "user"},
		{"nil details", authed, nil, "tourId"},
		{"missing tour", authed, &models.BookingDetails{BookingDate: time.Now()}, "tourId"},
		{"missing date", authed, &models.BookingDetails{TourID: "tour-1"}, "bookingDate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBookingRepo{nextID: "b-1"}
			svc := &DefaultBookingService{TourRepo: saturdayOptions(), BookingRepo: repo}

			_, err := svc.CreateBooking(tc.user, tc.details)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
			if len(repo.created) != 0 {
				t.Error("validation failure must not reach the store")
			}
		})
	}
}

func TestCreateBookingPersistsRecord(t *testing.T) {
	now := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{nextID: "b-42"}
	users := &fakeUserRepo{}
	sched := &fakeScheduler{}

	svc := &DefaultBookingService{
		TourRepo:       saturdayOptions(),
		BookingRepo:    repo,
		UserRepo:       users,
		Expiry:         sched,
		DeadlineWindow: 24 * time.Hour,
		Now:            fixedClock(now),
	}

	user := &models.AuthUser{UID: "user-1", Email: "linh@example.com", DisplayName: "Linh Tran"}
	booking, err := svc.CreateBooking(user, validDetails())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.ID != "b-42" {
		t.Errorf("id = %q, want store-assigned b-42", booking.ID)
	}
	if booking.UserID != "user-1" {
		t.Errorf("userId = %q", booking.UserID)
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %q, want pending", booking.PaymentStatus)
	}
	if booking.PaymentDate != nil {
		t.Error("paymentDate must not be set at creation")
	}
	if booking.NumberOfPerson != 3 {
		t.Errorf("numberOfPerson = %d, want 3", booking.NumberOfPerson)
	}
	if booking.TotalPrice != 2790000 {
		t.Errorf("totalPrice = %v, want derived 930000 x 3 = 2790000", booking.TotalPrice)
	}
	if !booking.TourDateStart.Equal(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tourDateStart = %v, want the resolved option date", booking.TourDateStart)
	}
	if !booking.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", booking.CreatedAt, now)
	}

	if got := users.refs["user-1"]; len(got) != 1 || got[0] != "b-42" {
		t.Errorf("booking ref on profile = %v, want [b-42]", got)
	}

	wantDeadline := now.Add(24 * time.Hour)
	if at, ok := sched.scheduled["b-42"]; !ok || !at.Equal(wantDeadline) {
		t.Errorf("expiry scheduled at %v, want %v", at, wantDeadline)
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "b-1"}
	svc := &DefaultBookingService{
		TourRepo:    saturdayOptions(),
		BookingRepo: repo,
		Now:         fixedClock(time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)),
	}

	user := &models.AuthUser{UID: "user-1", Email: "linh@example.com", DisplayName: "Linh Tran"}
	details := &models.BookingDetails{
		TourID:      "tour-1",
		BookingDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		// No date option id, no visitor count, no contact details.
	}

	booking, err := svc.CreateBooking(user, details)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.NumberOfPerson != 1 {
		t.Errorf("numberOfPerson = %d, want floor of 1", booking.NumberOfPerson)
	}
	// The option is resolved by calendar day when no id is given.
	if booking.TotalPrice != 930000 {
		t.Errorf("totalPrice = %v, want 930000 for one visitor", booking.TotalPrice)
	}
	if booking.ParticipantName != "Linh Tran" {
		t.Errorf("participantName = %q, want identity fallback", booking.ParticipantName)
	}
	if booking.ParticipantEmail != "linh@example.com" {
		t.Errorf("participantEmail = %q, want identity fallback", booking.ParticipantEmail)
	}
}

func TestCreateBookingSurvivesSideEffectFailures(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "b-1"}
	svc := &DefaultBookingService{
		TourRepo:    saturdayOptions(),
		BookingRepo: repo,
		UserRepo:    &fakeUserRepo{err: errors.New("profile store down")},
		Expiry:      &fakeScheduler{err: errors.New("queue down")},
		Now:         fixedClock(time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)),
	}

	user := &models.AuthUser{UID: "user-1"}
	if _, err := svc.CreateBooking(user, validDetails()); err != nil {
		t.Fatalf("side-effect failures must not fail creation: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("booking not persisted")
	}
}

func TestCreateBookingSurfacesStoreFailure(t *testing.T) {
	storeErr := errors.New("insert failed")
	svc := &DefaultBookingService{
		TourRepo:    saturdayOptions(),
		BookingRepo: &fakeBookingRepo{createErr: storeErr},
	}

	_, err := svc.CreateBooking(&models.AuthUser{UID: "user-1"}, validDetails())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestCreateBookingIgnoresClientTotal(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "b-1"}
	svc := &DefaultBookingService{
		TourRepo:    saturdayOptions(),
		BookingRepo: repo,
		Now:         fixedClock(time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)),
	}

	details := validDetails()
	details.TotalPrice = -2790000

	booking, err := svc.CreateBooking(&models.AuthUser{UID: "user-1"}, details)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.TotalPrice != 2790000 {
		t.Errorf("totalPrice = %v, want the derived 2790000 regardless of the draft value", booking.TotalPrice)
	}
	if repo.created[0].TotalPrice < 0 {
		t.Error("a negative total must never reach the store")
	}
}

func TestCreateBookingRejectsUnknownDateOption(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "b-1"}
	svc := &DefaultBookingService{
		TourRepo:    saturdayOptions(),
		BookingRepo: repo,
		Now:         fixedClock(time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)),
	}

	details := validDetails()
	details.DateOptionID = "tour-1_1999-01-01"

	_, err := svc.CreateBooking(&models.AuthUser{UID: "user-1"}, details)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "dateOptionId" {
		t.Errorf("field = %q, want dateOptionId", verr.Field)
	}
	if len(repo.created) != 0 {
		t.Error("an unpriceable draft must not reach the store")
	}
}
