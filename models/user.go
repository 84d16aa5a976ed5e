// models/user.go
package models

import "time"

// User represents a traveler profile stored in the users collection.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	Name           string    `bson:"name" json:"name"`
	Phone          string    `bson:"phone" json:"phone"`
	AvatarURL      string    `bson:"avatarUrl" json:"avatarUrl"`
	PaymentMethods []string  `bson:"paymentMethods" json:"paymentMethods"`
	Bookings       []string  `bson:"bookings" json:"bookings"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AuthUser is the identity exposed by the external auth provider.
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
