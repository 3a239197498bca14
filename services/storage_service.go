package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"cleaning-service-server/config"
)

// StorageService handles media uploads for the gallery and service catalog.
type StorageService struct {
	cld *cloudinary.Cloudinary
}

var (
	storageOnce sync.Once
	storage     *StorageService
	storageErr  error
)

// GetStorageService returns the shared storage service, initializing the
// Cloudinary client on first use.
func GetStorageService() (*StorageService, error) {
	storageOnce.Do(func() {
		cfg := config.AppConfig.Cloudinary
		if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
			storageErr = fmt.Errorf("cloudinary not configured")
			return
		}

		cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName)
		log.Printf("🔧 Using Cloudinary URL: cloudinary://%s:***@%s", cfg.APIKey, cfg.CloudName)

		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			storageErr = fmt.Errorf("failed to initialize Cloudinary: %w", err)
			return
		}
		storage = &StorageService{cld: cld}
	})
	return storage, storageErr
}

// UploadResult carries the stored location of an uploaded asset.
type UploadResult struct {
	URL      string
	PublicID string
}

// Upload stores a file under the given folder and returns its public URL.
// Object names are random so repeated uploads never collide.
func (s *StorageService) Upload(ctx context.Context, header *multipart.FileHeader, folder, resourceType string) (*UploadResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	overwrite := false
	unique := true
	up, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       uuid.New().String(),
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   resourceType,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Uploaded %s to %s", header.Filename, up.SecureURL)
	return &UploadResult{URL: up.SecureURL, PublicID: up.PublicID}, nil
}

// Delete removes an uploaded asset. Failures are logged, not surfaced, so a
// stale object never blocks deleting the database record that pointed at it.
func (s *StorageService) Delete(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("⚠️ Failed to delete media %s: %v", publicID, err)
	}
}

// PublicIDFromURL extracts the Cloudinary public ID from a delivery URL.
// Returns "" when the URL is not a Cloudinary URL.
func PublicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	// Skip version segment like v1712345678/
	if strings.HasPrefix(rest, "v") {
		if slash := strings.Index(rest, "/"); slash > 0 {
			allDigits := true
			for _, c := range rest[1:slash] {
				if c < '0' || c > '9' {
					allDigits = false
					break
				}
			}
			if allDigits {
				rest = rest[slash+1:]
			}
		}
	}
	// Strip the file extension
	if dot := strings.LastIndex(rest, "."); dot > 0 {
		rest = rest[:dot]
	}
	return rest
}
