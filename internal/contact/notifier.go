// AngelaMos | 2026
// notifier.go

package contact

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tkprod/portfolio-api/internal/config"
	"github.com/tkprod/portfolio-api/internal/core"
)

// Notifier tells the site owner about a new contact message.
type Notifier interface {
	Notify(ctx context.Context, msg *Message, recipient string) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, *Message, string) error {
	return nil
}

type SMTPNotifier struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewSMTPNotifier(cfg config.SMTPConfig) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPNotifier{
		client:   client,
		from:     cfg.User,
		fromName: cfg.FromName,
	}, nil
}

func (n *SMTPNotifier) Notify(
	ctx context.Context,
	msg *Message,
	recipient string,
) error {
	ctx, span := core.StartSpan(ctx, "contact.notify",
		attribute.String("contact.id", msg.ID),
	)
	defer span.End()

	m, err := buildNotification(msg, n.fromName, n.from, recipient)
	if err != nil {
		core.SetSpanError(ctx, err)
		return err
	}

	if err := n.client.DialAndSendWithContext(ctx, m); err != nil {
		core.SetSpanError(ctx, err)
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

func buildNotification(
	msg *Message,
	fromName, from, recipient string,
) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.FromFormat(fromName, from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(recipient); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("set reply-to: %w", err)
	}

	m.Subject(notificationSubject(msg))
	m.SetBodyString(mail.TypeTextPlain, notificationText(msg))
	m.AddAlternativeString(mail.TypeTextHTML, notificationHTML(msg))

	return m, nil
}

func notificationSubject(msg *Message) string {
	return "Nova mensagem de contacto de " + msg.Name
}

func notificationText(msg *Message) string {
	return fmt.Sprintf("Nome: %s\nEmail: %s\n\nMensagem:\n%s",
		msg.Name, msg.Email, msg.Body)
}

// notificationHTML escapes user input before embedding it.
func notificationHTML(msg *Message) string {
	body := strings.ReplaceAll(html.EscapeString(msg.Body), "\n", "<br>")

	return fmt.Sprintf(
		"<p><strong>Nome:</strong> %s</p>\n"+
			"<p><strong>Email:</strong> %s</p>\n"+
			"<p><strong>Mensagem:</strong></p>\n"+
			"<p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		body,
	)
}
