package services

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// Mailer delivers the recovery code to the user's registered address.
// Implementations may swap the transport (SMTP, provider API, console).
type Mailer interface {
	SendRecoveryCode(ctx context.Context, toEmail string, toName string, code int, expiresAt time.Time) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (mailer *SMTPMailer) SendRecoveryCode(ctx context.Context, toEmail string, toName string, code int, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := "Your password recovery code"
	body := recoveryMessageBody(toName, code)
	message := strings.Join([]string{
		"From: " + mailer.config.From,
		"To: " + toEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	address := fmt.Sprintf("%s:%d", mailer.config.Host, mailer.config.Port)
	var auth smtp.Auth
	if mailer.config.Username != "" {
		auth = smtp.PlainAuth("", mailer.config.Username, mailer.config.Password, mailer.config.Host)
	}

	if err := smtp.SendMail(address, auth, mailer.config.From, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("send recovery email: %w", err)
	}
	return nil
}

// LogMailer writes the code to the process log instead of sending email.
// Default when no SMTP host is configured, so development setups still
// complete the recovery flow.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (mailer *LogMailer) SendRecoveryCode(ctx context.Context, toEmail string, toName string, code int, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Printf("[mail] recovery code for %s: %06d (expires %s)", toEmail, code, expiresAt.Format(time.RFC3339))
	return nil
}

func recoveryMessageBody(name string, code int) string {
	greeting := "Hello"
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		greeting = "Hello, " + trimmed
	}

	return strings.Join([]string{
		greeting,
		"",
		"You requested a password recovery.",
		"",
		fmt.Sprintf("Your code is: %06d", code),
		"",
		"This code expires in 5 minutes.",
		"",
		"If you did not request this recovery, ignore this email.",
	}, "\r\n")
}
