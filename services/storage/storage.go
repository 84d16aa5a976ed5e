package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// cloudinaryStorage implements StorageService backed by Cloudinary.
type cloudinaryStorage struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(client *cloudinary.Cloudinary, cloudName string) StorageService {
	return &cloudinaryStorage{
		client:    client,
		cloudName: cloudName,
	}
}

// UploadFile uploads the file under destFolder with a collision-free
// public id and returns the secure delivery URL.
func (s *cloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(localFilePath), filepath.Ext(localFilePath))
	publicID := fmt.Sprintf("%s/%s-%s", destFolder, base, uuid.NewString())

	resp, err := s.client.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		PublicID: publicID,
		Folder:   destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}
	return resp.SecureURL, nil
}

// DeleteFile removes an uploaded asset by its public id.
func (s *cloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}
