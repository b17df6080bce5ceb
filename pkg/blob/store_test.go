package blob

import (
	"context"
	"testing"

	"reddybook/config"
	"reddybook/pkg/cloudinary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	cfg := &config.Config{Blob: config.BlobConfig{Backend: "local", LocalDir: t.TempDir(), LocalBaseURL: "/uploads"}}
	s, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)

	cfg.Blob.Backend = "cloudinary"
	cfg.Cloudinary = config.CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}
	s, err = NewStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &cloudinary.Store{}, s)

	cfg.Blob.Backend = "s3"
	_, err = NewStore(context.Background(), cfg)
	assert.Error(t, err)
}
