package models

import "time"

// PaymentStatus enumerates the payment lifecycle of a persisted booking.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentExpired   PaymentStatus = "expired"
)

// Booking represents a persisted reservation record.
type Booking struct {
	ID                     string        `bson:"id" json:"id"`                                         // Store-assigned identifier, written back after insert
	UserID                 string        `bson:"userId" json:"userId"`                                 // User who made the booking
	ParticipantName        string        `bson:"participantName" json:"participantName"`               // Contact name
	ParticipantEmail       string        `bson:"participantEmail" json:"participantEmail"`             // Contact email
	ParticipantPhoneNumber string        `bson:"participantPhoneNumber" json:"participantPhoneNumber"` // Contact phone
	TourID                 string        `bson:"tourId" json:"tourId"`                                 // Tour being booked
	TourName               string        `bson:"tourName,omitempty" json:"tourName,omitempty"`         // Denormalized for easier reference
	TourDateStart          time.Time     `bson:"tourDateStart" json:"tourDateStart"`                   // Selected start date
	NumberOfPerson         int           `bson:"numberOfPerson" json:"numberOfPerson"`                 // Visitor count, >= 1
	TotalPrice             float64       `bson:"totalPrice" json:"totalPrice"`                         // Derived from date price x visitors
	PaymentStatus          PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`                   // pending -> completed | expired
	CreatedAt              time.Time     `bson:"createdAt" json:"createdAt"`
	PaymentDate            *time.Time    `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"` // Set on confirmation
}
