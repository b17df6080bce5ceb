// Package blob stores uploaded files and hands out their public URLs.
package blob

import (
	"context"
	"errors"
	"io"
)

// Store is the blob storage capability: put a file under namespace/path, then
// resolve the URL it is publicly served from.
type Store interface {
	Upload(ctx context.Context, namespace, path string, r io.Reader, contentType string) error
	PublicURL(namespace, path string) string
}

var ErrInvalidPath = errors.New("blob: invalid path")
