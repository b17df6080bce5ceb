package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Logos are delivered resized with automatic quality and format.
const (
	LogoWidth = 256
	logoEager = "q_auto,f_auto,w_256,c_fit"
)

var eagerAsyncFalse = false

// Store uploads files to Cloudinary under the public id <namespace>/<path without extension>.
// No asset folder is set; the id alone addresses the delivery URL.
type Store struct {
	cloudName string
	uploader  *uploader.API
}

func NewStore(cloudName, apiKey, apiSecret string) (*Store, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{cloudName: cloudName, uploader: up}, nil
}

func (s *Store) Upload(ctx context.Context, namespace, p string, r io.Reader, _ string) error {
	result, err := s.uploader.Upload(ctx, r, uploadParams(namespace, p))
	if err != nil {
		return err
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	return nil
}

func uploadParams(namespace, p string) uploader.UploadParams {
	return uploader.UploadParams{
		PublicID:   assetID(namespace, p),
		Eager:      logoEager,
		EagerAsync: &eagerAsyncFalse,
	}
}

func assetID(namespace, p string) string {
	return namespace + "/" + PublicID(p)
}

// PublicURL returns the optimized delivery URL; f_auto picks the format.
func (s *Store) PublicURL(namespace, p string) string {
	return BuildOptimizedImageURL(s.cloudName, assetID(namespace, p), LogoWidth)
}

// PublicID strips the file extension, Cloudinary stores it separately.
func PublicID(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

func BuildOptimizedImageURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = LogoWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fit/%s",
		cloudName, width, publicID)
}
