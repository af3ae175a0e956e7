package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/domain/ticket"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL is used for dashboard links in notification emails.
	BaseURL string
}

// SMTPNotifier implements the ticket notifier on plain SMTP. Sends are
// synchronous; callers run them on a background goroutine.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) error {
	subject := fmt.Sprintf("[%s] We received your request: %s", t.Serial(), t.Subject().Title)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your support request has been received</h2>
			<p>Hi %s,</p>
			<p>Your ticket <strong>%s</strong> has been created and our team will pick it up shortly.</p>
			<p><strong>Subject:</strong> %s</p>
			<p>You will receive another email when the ticket is resolved.</p>
		</body>
		</html>
	`, t.Requester().Name, t.Serial(), t.Subject().Title)

	plainBody := fmt.Sprintf(`
Hi %s,

Your ticket %s has been created and our team will pick it up shortly.

Subject: %s

You will receive another email when the ticket is resolved.
	`, t.Requester().Name, t.Serial(), t.Subject().Title)

	return s.sendEmail(t.Requester().Email, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) TicketResolved(ctx context.Context, t *ticket.Ticket) error {
	subject := fmt.Sprintf("[%s] Your request has been resolved", t.Serial())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your support request has been resolved</h2>
			<p>Hi %s,</p>
			<p>Your ticket <strong>%s</strong> has been marked as resolved.</p>
			<p><strong>Resolution:</strong> %s</p>
			<p>If the issue persists, reply to this email and we will reopen the ticket.</p>
		</body>
		</html>
	`, t.Requester().Name, t.Serial(), t.ResolvedRemarks())

	plainBody := fmt.Sprintf(`
Hi %s,

Your ticket %s has been marked as resolved.

Resolution: %s

If the issue persists, reply to this email and we will reopen the ticket.
	`, t.Requester().Name, t.Serial(), t.ResolvedRemarks())

	return s.sendEmail(t.Requester().Email, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
