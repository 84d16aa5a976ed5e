package models

import (
	"fmt"
	"time"
)

// PaymentDetails is a derived view of a persisted Booking plus the
// computed payment deadline. It is recomputed on every load and never
// persisted itself; only the status fields on the Booking are.
type PaymentDetails struct {
	BookingID         string        `json:"bookingId"`
	TourID            string        `json:"tourId"`
	TourName          string        `json:"tourName"`
	TourDuration      string        `json:"tourDuration"`
	TourStartDate     time.Time     `json:"tourStartDate"`
	TourEndDate       time.Time     `json:"tourEndDate"`
	NumberOfTravelers int           `json:"numberOfTravelers"`
	TotalAmount       float64       `json:"totalAmount"`
	Currency          string        `json:"currency"`
	PaymentDeadline   time.Time     `json:"paymentDeadline"`
	RemainingSeconds  int64         `json:"remainingSeconds"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
}

// UpdateRemaining recomputes the remaining seconds against the given
// wall-clock time. Remaining time depends only on the deadline, never
// on elapsed ticks.
func (p *PaymentDetails) UpdateRemaining(now time.Time) {
	if p.PaymentDeadline.After(now) {
		p.RemainingSeconds = int64(p.PaymentDeadline.Sub(now) / time.Second)
	} else {
		p.RemainingSeconds = 0
	}
}

// DurationDays returns the inclusive day span of the tour.
func (p *PaymentDetails) DurationDays() int {
	if p.TourStartDate.IsZero() || p.TourEndDate.IsZero() {
		return 0
	}
	diff := p.TourEndDate.Sub(p.TourStartDate)
	if diff < 0 {
		diff = -diff
	}
	return int(diff/(24*time.Hour)) + 1
}

// FormattedDuration returns the day span as a display string.
func (p *PaymentDetails) FormattedDuration() string {
	days := p.DurationDays()
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
