// Package mailer delivers sync keys to account holders. The relay never
// returns a key in an HTTP response; email is the only channel.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"
)

// Mailer sends sync keys out-of-band.
type Mailer interface {
	// SendSyncKey delivers a freshly created key
	SendSyncKey(ctx context.Context, email, key string) error

	// SendKeyRecovery delivers every key registered for the address
	SendKeyRecovery(ctx context.Context, email string, keys []string) error
}

// SMTPConfig holds the connection settings for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// SMTPMailer sends mail through an SMTP relay. TLS is negotiated by
// port policy, so both STARTTLS (587) and implicit TLS (465) work.
type SMTPMailer struct {
	cfg    SMTPConfig
	client *mail.Client
}

// NewSMTP creates an SMTP mailer.
func NewSMTP(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{cfg: cfg, client: client}, nil
}

func (m *SMTPMailer) SendSyncKey(ctx context.Context, email, key string) error {
	body := fmt.Sprintf(
		"Your Filameter sync key:\n\n    %s\n\n"+
			"Enter it on your device with 'filameter sync adopt' to start syncing.\n"+
			"Keep it private; anyone holding the key can read and change your inventory.\n",
		key)
	return m.send(ctx, email, "Your Filameter sync key", body)
}

func (m *SMTPMailer) SendKeyRecovery(ctx context.Context, email string, keys []string) error {
	body := fmt.Sprintf(
		"Sync keys registered for this address:\n\n    %s\n\n"+
			"If you did not request this email you can ignore it.\n",
		strings.Join(keys, "\n    "))
	return m.send(ctx, email, "Your Filameter sync keys", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg, err := m.message(to, subject, body)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) message(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", m.cfg.From, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

// LogMailer writes keys to the log instead of sending mail. Development
// use only.
type LogMailer struct {
	logger *slog.Logger
}

// NewLog creates a log-only mailer.
func NewLog(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendSyncKey(ctx context.Context, email, key string) error {
	m.logger.Info("would mail sync key", "email", email, "key", key)
	return nil
}

func (m *LogMailer) SendKeyRecovery(ctx context.Context, email string, keys []string) error {
	m.logger.Info("would mail key recovery", "email", email, "keys", len(keys))
	return nil
}
