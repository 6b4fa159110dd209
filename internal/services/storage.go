package services

import (
	"context"
	"io"
	"strings"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/pkg/logger"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService stores uploaded images in an S3-compatible object store.
// The stored value on User.Photo and Project.Image is the opaque object key.
type StorageService struct {
	client *minio.Client
	bucket string
}

// NewStorageService connects to the configured object store. When storage
// is disabled in config it returns a nil-client service whose Upload
// rejects requests.
func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	if !cfg.Enabled {
		return &StorageService{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &StorageService{client: client, bucket: cfg.Bucket}, nil
}

// Enabled reports whether an object store is configured.
func (s *StorageService) Enabled() bool {
	return s.client != nil
}

// EnsureBucket creates the bucket if it does not exist.
func (s *StorageService) EnsureBucket(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		logger.Info().Str("bucket", s.bucket).Msg("created storage bucket")
	}
	return nil
}

// Upload stores an image and returns its object key. Only image content
// types are accepted.
func (s *StorageService) Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	if s.client == nil {
		return "", response.NewBadRequest("image storage is not configured")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", response.NewBadRequest("unsupported file type")
	}

	key := "uploads/" + uuid.New().String() + extensionFor(contentType)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
