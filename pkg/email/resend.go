package email

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

var ErrNoRecipient = errors.New("email has no recipient")

// Message is a rendered email ready to hand to a transport.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Transport delivers a message and returns the provider's message id.
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendTransport sends through the Resend API.
type ResendTransport struct {
	client *resend.Client
}

func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

func (t *ResendTransport) Send(_ context.Context, msg Message) (string, error) {
	resp, err := t.client.Emails.Send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", err
	}
	return resp.Id, nil
}

// LogTransport only logs messages. Used when no Resend key is configured.
type LogTransport struct {
	logger *zap.Logger
}

func NewLogTransport(logger *zap.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, msg Message) (string, error) {
	t.logger.Info("email not sent, no provider configured",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return "", nil
}

// EmailService renders lead mails. Delivery errors are returned unlogged.
type EmailService struct {
	transport  Transport
	from       string
	fromName   string
	salesInbox string
	logger     *zap.Logger
}

func NewEmailService(transport Transport, fromAddress, fromName, salesInbox string, logger *zap.Logger) *EmailService {
	return &EmailService{
		transport:  transport,
		from:       fromAddress,
		fromName:   fromName,
		salesInbox: salesInbox,
		logger:     logger.Named("email"),
	}
}

// SendLeadNotification tells the sales inbox about a new lead. It is a no-op
// when no inbox is configured.
func (s *EmailService) SendLeadNotification(ctx context.Context, lead *models.Lead) error {
	if s.salesInbox == "" {
		return nil
	}

	subject := fmt.Sprintf("New lead: %s (%s)", lead.Business, lead.Industry)
	if lead.Plan != "" {
		subject += " - " + lead.Plan
	}

	return s.send(ctx, "lead-notification.html", s.salesInbox, subject, map[string]interface{}{
		"Lead": lead,
		"Year": time.Now().Year(),
	})
}

// SendLeadConfirmation thanks the submitter.
func (s *EmailService) SendLeadConfirmation(ctx context.Context, lead *models.Lead) error {
	return s.send(ctx, "lead-confirmation.html", lead.Email, "Thanks for reaching out - "+s.fromName, map[string]interface{}{
		"Name":     lead.Name,
		"Business": lead.Business,
		"Plan":     lead.Plan,
		"Sender":   s.fromName,
		"Year":     time.Now().Year(),
	})
}

func (s *EmailService) send(ctx context.Context, templateName, to, subject string, data interface{}) error {
	if to == "" {
		return ErrNoRecipient
	}

	html, err := parseTemplate(templateName, data)
	if err != nil {
		return err
	}

	id, err := s.transport.Send(ctx, Message{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", templateName, to, err)
	}

	s.logger.Info("email sent", zap.String("template", templateName), zap.String("to", to), zap.String("id", id))
	return nil
}

func parseTemplate(templateName string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return body.String(), nil
}
