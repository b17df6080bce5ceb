package blob

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG signature plus IHDR chunk header
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestReadImage_DetectsPNG(t *testing.T) {
	img, err := ReadImage(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Ext)
}

func TestReadImage_Rejects(t *testing.T) {
	_, err := ReadImage(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrImageEmpty)

	_, err = ReadImage(strings.NewReader("<html><body>hi</body></html>"))
	assert.ErrorIs(t, err, ErrImageType)

	big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
	_, err = ReadImage(bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
