package userRepo

import "travelerapp/models"

// UserRepository defines data access for traveler profiles.
type UserRepository interface {
	GetUserByID(userID string) (*models.User, error)
	UpsertUser(user *models.User) error
	AddBookingRef(userID, bookingID string) error
	SetAvatarURL(userID, avatarURL string) error
}
