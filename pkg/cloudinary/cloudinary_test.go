package cloudinary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicID(t *testing.T) {
	assert.Equal(t, "b1c2", PublicID("b1c2.png"))
	assert.Equal(t, "plain", PublicID("plain"))
}

func TestStore_PublicURL(t *testing.T) {
	s := &Store{cloudName: "demo"}
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_256,c_fit/logos/abc",
		s.PublicURL("logos", "abc.jpeg"))
}

func TestUploadParams_IDCarriesNamespace(t *testing.T) {
	params := uploadParams("logos", "abc.jpeg")
	assert.Equal(t, "logos/abc", params.PublicID)
	assert.Empty(t, params.Folder)

	s := &Store{cloudName: "demo"}
	assert.True(t, strings.HasSuffix(s.PublicURL("logos", "abc.jpeg"), "/"+params.PublicID))
}
