package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts media storage for vendor portfolios, venue
// photos, and feed images.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns the
	// permanent public ID.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns a public delivery URL for the asset.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
	// GetSecureDownloadURL returns a signed URL that expires.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
