package infrastructure

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

// GCSObjectStore implements domain.ObjectStore using Google Cloud Storage.
// Credentials come from the ambient application-default environment.
type GCSObjectStore struct {
	client *storage.Client
	logger *zap.Logger
}

// NewGCSObjectStore creates a new GCS-backed object store
func NewGCSObjectStore(ctx context.Context, logger *zap.Logger) (*GCSObjectStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSObjectStore{client: client, logger: logger}, nil
}

// SignedURL exchanges bucket/object for a V4 signed GET URL valid for ttl
func (s *GCSObjectStore) SignedURL(ctx context.Context, bucket, object string, ttl time.Duration) (string, error) {
	url, err := s.client.Bucket(bucket).SignedURL(object, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("%w: signing %s/%s: %v", domain.ErrResolution, bucket, object, err)
	}

	s.logger.Debug("Generated signed URL",
		zap.String("bucket", bucket),
		zap.String("object", object),
		zap.Duration("ttl", ttl))

	return url, nil
}

// Delete removes an object from the store
func (s *GCSObjectStore) Delete(ctx context.Context, bucket, object string) error {
	if err := s.client.Bucket(bucket).Object(object).Delete(ctx); err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", domain.ErrCleanup, bucket, object, err)
	}

	s.logger.Debug("Deleted object",
		zap.String("bucket", bucket),
		zap.String("object", object))

	return nil
}

// Close releases the underlying client
func (s *GCSObjectStore) Close() error {
	return s.client.Close()
}
