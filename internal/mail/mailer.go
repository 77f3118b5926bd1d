package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/supportly-beer/supportly-backend/internal/config"
	"github.com/supportly-beer/supportly-backend/pkg/log"
)

// Mailer sends the transactional mails of the account lifecycle. Links
// carry a short-lived JWT minted by the caller.
type Mailer interface {
	SendEmailValidation(ctx context.Context, to, name, link string) error
	SendForgotPassword(ctx context.Context, to, name, link string) error
}

// SMTPMailer implements Mailer over plain SMTP.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (m *SMTPMailer) SendEmailValidation(ctx context.Context, to, name, link string) error {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"welcome to Supportly! Please confirm your email address:\r\n\r\n"+
			"%s\r\n\r\n"+
			"The link expires in 24 hours.\r\n",
		name, link)
	return m.send(ctx, to, "Confirm your email address", body)
}

func (m *SMTPMailer) SendForgotPassword(ctx context.Context, to, name, link string) error {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"someone requested a password reset for your account. If this was you, "+
			"set a new password here:\r\n\r\n"+
			"%s\r\n\r\n"+
			"The link expires in 1 hour. Otherwise you can ignore this mail.\r\n",
		name, link)
	return m.send(ctx, to, "Reset your password", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str(log.FieldEmail, to).Msg("failed to send mail")
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
