package storage

import "context"

// StorageService defines the interface for blob storage operations.
type StorageService interface {
	// UploadFile uploads the local file into destFolder and returns the
	// served URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}
