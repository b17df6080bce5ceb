// Package whatsapp builds wa.me deep links that open a chat with a prefilled message.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link returns https://wa.me/<number>?text=<message>. The message is percent-encoded
// with spaces as %20 so every client renders it verbatim.
func Link(number, message string) string {
	return baseURL + number + "?text=" + encodeComponent(message)
}

// IntakeMessage is the text a visitor sends to support after picking a site.
func IntakeMessage(name, countryCode, mobile, site string) string {
	return fmt.Sprintf("NAME: %s\nMOBILE NUMBER: +%s %s\nWEBSITE: %s", name, countryCode, mobile, site)
}

// SupportGreeting is the text an admin opens a chat with a submitter with.
func SupportGreeting(name, brand string) string {
	return fmt.Sprintf("Hello %s, this is %s support team.", name, brand)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
