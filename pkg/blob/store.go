package blob

import (
	"context"
	"fmt"

	"reddybook/config"
	"reddybook/pkg/cloudinary"
)

// NewStore selects the backend named by cfg.Blob.Backend.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Blob.Backend {
	case "", "local":
		return NewLocalStore(cfg.Blob.LocalDir, cfg.Blob.LocalBaseURL)
	case "cloudinary":
		return cloudinary.NewStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	case "gcs":
		return NewGCSStore(ctx, cfg.GCS.Bucket, cfg.GCS.CredentialsFile)
	default:
		return nil, fmt.Errorf("unsupported blob backend %q", cfg.Blob.Backend)
	}
}
