package blob

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore keeps files in a Google Cloud Storage bucket with public read access.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs: bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Upload(ctx context.Context, namespace, path string, r io.Reader, contentType string) error {
	if namespace == "" || path == "" {
		return ErrInvalidPath
	}
	w := s.client.Bucket(s.bucket).Object(namespace + "/" + path).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("gcs upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs upload: %w", err)
	}
	return nil
}

func (s *GCSStore) PublicURL(namespace, path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s/%s", s.bucket, namespace, path)
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
