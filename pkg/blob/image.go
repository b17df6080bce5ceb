package blob

import (
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

const MaxImageSize = 2 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds 2MB limit")
	ErrImageEmpty    = errors.New("image is empty")
	ErrImageType     = errors.New("only PNG, JPG, GIF and WEBP images are allowed")
)

// allowedImageTypes maps a detected MIME type to the stored file extension.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Image is an upload whose type was detected from its content.
type Image struct {
	Content     []byte
	ContentType string
	Ext         string
}

// ReadImage reads at most MaxImageSize bytes and checks the content type
// against the allowed image types. The client supplied type is ignored.
func ReadImage(r io.Reader) (*Image, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrImageEmpty
	}
	if len(content) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	mime := mimetype.Detect(content).String()
	ext, ok := allowedImageTypes[mime]
	if !ok {
		return nil, ErrImageType
	}
	return &Image{Content: content, ContentType: mime, Ext: ext}, nil
}
