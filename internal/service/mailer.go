package service

import (
	"bytes"
	"fmt"
	"html/template"

	"reddybook/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends account mail. SMTP failures are reported to the caller, which
// decides whether they matter.
type Mailer interface {
	SendWelcome(to, signInURL string) error
}

// NewMailer returns an SMTP mailer, or a mailer that drops everything when no
// SMTP host is configured.
func NewMailer(cfg *config.MailConfig, brand string) Mailer {
	if cfg.SMTPHost == "" {
		return nopMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.FromAddress,
		brand:  brand,
	}
}

type nopMailer struct{}

func (nopMailer) SendWelcome(string, string) error { return nil }

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	brand  string
}

var welcomeHTML = template.Must(template.New("welcome").Parse(
	`<p>An account was created for {{.To}}.</p><p><a href="{{.SignInURL}}">Sign in to {{.Brand}}</a></p>`))

type welcomeData struct {
	To        string
	SignInURL string
	Brand     string
}

// renderWelcome returns the plain and HTML bodies of the welcome mail.
func renderWelcome(to, signInURL, brand string) (string, string, error) {
	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, welcomeData{To: to, SignInURL: signInURL, Brand: brand}); err != nil {
		return "", "", err
	}
	plain := fmt.Sprintf("An account was created for %s.\n\nSign in at: %s\n", to, signInURL)
	return plain, buf.String(), nil
}

func (m *smtpMailer) SendWelcome(to, signInURL string) error {
	plain, html, err := renderWelcome(to, signInURL, m.brand)
	if err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to, "")
	msg.SetHeader("Subject", fmt.Sprintf("Your %s admin account", m.brand))
	msg.SetBody("text/plain", plain)
	msg.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
