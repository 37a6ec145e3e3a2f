// Package mail delivers composed emails. SMTPMailer talks to a real relay
// through go-mail; LogMailer only logs, for local development and tests.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Sender is the identity every outgoing message is sent as.
type Sender struct {
	Name    string
	Address string
}

// SMTPConfig holds the relay settings read from the environment.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     Sender
	Timeout  time.Duration
}

// SMTPMailer sends each email over a fresh SMTP connection. Send is safe for
// concurrent use; every call builds its own client.
type SMTPMailer struct {
	host string
	opts []gomail.Option
	from Sender
}

// NewSMTPMailer builds a client for cfg. STARTTLS is used when the relay offers
// it; PLAIN auth is enabled only when a username is configured.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	// Fail at startup on a bad host or option rather than on the first send.
	if _, err := gomail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("mail.NewSMTPMailer: %w", err)
	}
	return &SMTPMailer{host: cfg.Host, opts: opts, from: cfg.From}, nil
}

// Send dials the relay, delivers email and closes the connection.
func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	msg, err := buildMessage(m.from, email)
	if err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	client, err := gomail.NewClient(m.host, m.opts...)
	if err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	return nil
}

func buildMessage(from Sender, email domain.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(from.Name, from.Address); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	var err error
	if email.ToName != "" {
		err = msg.AddToFormat(email.ToName, email.ToAddress)
	} else {
		err = msg.To(email.ToAddress)
	}
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, email.HTML)
	return msg, nil
}
