package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeLink(t *testing.T) {
	msg := IntakeMessage("Ravi", "91", "9876543210", "ReddyBook")
	assert.Equal(t, "NAME: Ravi\nMOBILE NUMBER: +91 9876543210\nWEBSITE: ReddyBook", msg)

	link := Link("919000000001", msg)
	assert.Equal(t,
		"https://wa.me/919000000001?text=NAME%3A%20Ravi%0AMOBILE%20NUMBER%3A%20%2B91%209876543210%0AWEBSITE%3A%20ReddyBook",
		link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestSupportGreeting(t *testing.T) {
	link := Link("919876543210", SupportGreeting("Asha", "Reddy Book"))
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/919876543210", u.Path)
	assert.Equal(t, "Hello Asha, this is Reddy Book support team.", u.Query().Get("text"))
}

func TestLink_EmptyNumber(t *testing.T) {
	assert.Equal(t, "https://wa.me/?text=hi", Link("", "hi"))
}
