package models

import "time"

// BookingDetails is the transient draft of a booking while the user is
// still filling in visitor count, contact and location details. It is
// never persisted; a Booking is built from it at creation time.
type BookingDetails struct {
	TourID       string    `json:"tourId"`
	TourName     string    `json:"tourName"`
	TourImageURL string    `json:"tourImageUrl"`
	DateOptionID string    `json:"dateOptionId"`
	BookingDate  time.Time `json:"bookingDate"`
	VisitorCount int       `json:"visitorCount"`

	// TotalPrice is the client's display value only. The persisted total
	// is always rederived from the resolved date option.
	TotalPrice float64 `json:"totalPrice"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	PaymentMethod   string `json:"paymentMethod"`
}

// ContactFilled reports whether the contact step is complete.
func (d *BookingDetails) ContactFilled() bool {
	return d.ContactName != "" && d.ContactEmail != "" && d.ContactPhone != ""
}

// LocationFilled reports whether the pickup/dropoff step is complete.
func (d *BookingDetails) LocationFilled() bool {
	return d.PickupLocation != "" && d.DropoffLocation != ""
}
