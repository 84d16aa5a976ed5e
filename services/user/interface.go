package user

import (
	"context"

	userRepo "travelerapp/database/repository/user"
	"travelerapp/models"
	"travelerapp/services/storage"
)

// UserService manages traveler profiles.
type UserService interface {
	// GetProfile returns the stored profile, creating one from the auth
	// identity when none exists yet.
	GetProfile(authUser *models.AuthUser) (*models.User, error)
	UpdateProfile(user *models.User) error
	UploadAvatar(ctx context.Context, userID, localFilePath string) (string, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Storage storage.StorageService
}
