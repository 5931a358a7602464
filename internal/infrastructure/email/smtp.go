package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"gopkg.in/gomail.v2"

	"smartincident/internal/domain/notification"
)

// ErrNotConfigured is returned when no enabled mail configuration is stored.
var ErrNotConfigured = errors.New("email delivery is not configured")

// SMTPSender delivers mail using the configuration stored in the database.
// The configuration is re-read and a fresh dialer built on every send, so an
// administrator's settings change takes effect without a restart.
type SMTPSender struct {
	configs notification.ConfigRepository
	baseURL string
}

func NewSMTPSender(configs notification.ConfigRepository, baseURL string) *SMTPSender {
	return &SMTPSender{
		configs: configs,
		baseURL: baseURL,
	}
}

func (s *SMTPSender) SendWelcomeEmail(ctx context.Context, to, name string) error {
	subject := "Welcome to the incident portal"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>An account has been created for you on the incident portal.</p>
			<p>Use the password reset option on the login page to set your password:</p>
			<p><a href="%s/login">%s/login</a></p>
		</body>
		</html>
	`, name, s.baseURL, s.baseURL)

	return s.send(ctx, to, subject, htmlBody)
}

func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)

	subject := "Reset your password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request a password reset, please ignore this email.</p>
		</body>
		</html>
	`, resetURL)

	return s.send(ctx, to, subject, htmlBody)
}

// SendIncidentCreatedEmail notifies staff about a freshly reported incident.
// The description is treated as markdown and rendered to HTML for the body.
func (s *SMTPSender) SendIncidentCreatedEmail(ctx context.Context, to, ticketCode, title, description string) error {
	subject := fmt.Sprintf("[%s] New incident: %s", ticketCode, title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Ticket <strong>%s</strong> has been created.</p>
			%s
		</body>
		</html>
	`, title, ticketCode, renderMarkdown(description))

	return s.send(ctx, to, subject, htmlBody)
}

func (s *SMTPSender) SendCommentAddedEmail(ctx context.Context, to, ticketCode, author, content string) error {
	subject := fmt.Sprintf("[%s] New comment from %s", ticketCode, author)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p><strong>%s</strong> commented on ticket <strong>%s</strong>:</p>
			%s
		</body>
		</html>
	`, author, ticketCode, renderMarkdown(content))

	return s.send(ctx, to, subject, htmlBody)
}

// SendTestEmail verifies the stored configuration end to end.
func (s *SMTPSender) SendTestEmail(ctx context.Context, to string) error {
	htmlBody := `
		<html>
		<body>
			<p>This is a test message from the incident portal. Your mail configuration works.</p>
		</body>
		</html>
	`
	return s.send(ctx, to, "Test email", htmlBody)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, htmlBody string) error {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load mail configuration: %w", err)
	}
	if cfg == nil || !cfg.Enabled() {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.FromEmail(), cfg.FromName())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(cfg.SMTPHost(), cfg.SMTPPort(), cfg.SMTPUser(), cfg.SMTPPass())
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return fmt.Sprintf("<p>%s</p>", src)
	}
	return buf.String()
}
