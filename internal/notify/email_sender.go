package notify

import (
	"time"

	"github.com/rs/zerolog"
	gomail "gopkg.in/mail.v2"
)

// EmailConfig holds SMTP configuration for sending emails.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Enabled reports whether enough is configured to send mail.
func (c EmailConfig) Enabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

func (c EmailConfig) from() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.SMTPUser
}

// EmailSender delivers messages via SMTP.
type EmailSender struct {
	cfg    EmailConfig
	logger zerolog.Logger
}

// NewEmailSender creates a sender with the given SMTP configuration.
func NewEmailSender(cfg EmailConfig, logger zerolog.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, logger: logger}
}

func (s *EmailSender) buildMessage(msg *RenderedMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.from())
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTML != "" && msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else if msg.HTML != "" {
		m.SetBody("text/html", msg.HTML)
	} else {
		m.SetBody("text/plain", msg.Text)
	}

	for _, path := range msg.Attachments {
		m.Attach(path)
	}
	return m
}

// Send delivers an email with HTML body, plain text fallback and attachments.
// It is a no-op when email is not configured.
func (s *EmailSender) Send(msg *RenderedMessage) error {
	if !s.cfg.Enabled() {
		return nil
	}

	dialer := gomail.NewDialer(s.cfg.SMTPServer, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(s.buildMessage(msg)); err != nil {
		s.logger.Error().Err(err).Str("to", s.cfg.ToEmail).Str("subject", msg.Subject).Msg("Failed to send email")
		return err
	}

	s.logger.Info().Str("subject", msg.Subject).Int("attachments", len(msg.Attachments)).Msg("Email sent")
	return nil
}
