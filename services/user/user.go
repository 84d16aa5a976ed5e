package user

import (
	"context"
	"fmt"

	"travelerapp/models"
	"travelerapp/utils"

	"go.uber.org/zap"
)

const avatarFolder = "avatars"

// GetProfile fetches the stored profile. When the user has authenticated
// but never saved a profile, one is created from the auth identity so
// callers always get a usable record.
func (svc *DefaultUserService) GetProfile(authUser *models.AuthUser) (*models.User, error) {
	if authUser == nil || authUser.UID == "" {
		return nil, fmt.Errorf("no authenticated user")
	}

	profile, err := svc.Repo.GetUserByID(authUser.UID)
	if err == nil {
		return profile, nil
	}

	utils.GetLogger().Info("creating profile from auth identity",
		zap.String("userId", authUser.UID))

	profile = &models.User{
		ID:    authUser.UID,
		Email: authUser.Email,
		Name:  authUser.DisplayName,
	}
	if err := svc.Repo.UpsertUser(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile persists profile edits.
func (svc *DefaultUserService) UpdateProfile(user *models.User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("profile has no user id")
	}
	return svc.Repo.UpsertUser(user)
}

// UploadAvatar pushes the image to the blob store and records the
// served URL on the profile.
func (svc *DefaultUserService) UploadAvatar(ctx context.Context, userID, localFilePath string) (string, error) {
	url, err := svc.Storage.UploadFile(ctx, localFilePath, avatarFolder)
	if err != nil {
		return "", fmt.Errorf("avatar upload failed: %w", err)
	}
	if err := svc.Repo.SetAvatarURL(userID, url); err != nil {
		return "", fmt.Errorf("failed to record avatar url: %w", err)
	}
	return url, nil
}
