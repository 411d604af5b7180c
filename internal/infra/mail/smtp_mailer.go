// Package mail provides the SMTP implementation of the mailer contract.
package mail

import (
	"context"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"hrcore/config"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
)

const welcomeSubject = "Bienvenido al sistema de Recursos Humanos"

const welcomeBody = `Hola,

Tu cuenta en el sistema de Recursos Humanos ha sido creada.
Ya puedes iniciar sesión con tu correo corporativo.

Saludos,
Recursos Humanos`

// smtpMailer implements service.Mailer over an SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp config must be provided")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.SMTP.From,
		logger: logger,
	}, nil
}

// SendWelcome sends the onboarding mail to a newly registered employee.
func (m *smtpMailer) SendWelcome(ctx context.Context, to string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "failed to set mail recipient")
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(gomail.TypeTextPlain, welcomeBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send welcome mail")
	}

	m.logger.InfoContext(ctx, "welcome mail sent", slog.String("to", to))

	return nil
}
