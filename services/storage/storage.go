package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}

func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, nil
}

func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

func (s *StorageServiceImpl) getAsset(resourceType, publicID string) (*asset.Asset, error) {
	switch resourceType {
	case "image":
		return s.cld.Image(publicID)
	case "video":
		return s.cld.Video(publicID)
	default:
		return s.cld.Media(publicID)
	}
}

func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	a, err := s.getAsset(resourceType, publicID)
	if err != nil {
		return "", fmt.Errorf("storage: failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to build URL: %w", err)
	}
	return url, nil
}

// GetSecureDownloadURL signs "expires_at" and "public_id" with the API
// secret (SHA-1, per Cloudinary's authenticated delivery scheme).
func (s *StorageServiceImpl) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/%s/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, resourceType, signature, expiresAt, publicID)
	return secureURL, nil
}

func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
