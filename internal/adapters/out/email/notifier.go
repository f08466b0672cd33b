// Package email notifies customers about their orders through SendGrid.
package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"rental/internal/core/ports"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Notifier implements ports.Notifier by emailing the customer of the order.
type Notifier struct {
	sender    sender
	directory ports.CustomerDirectory
	from      *mail.Email
}

func NewNotifier(sender sender, directory ports.CustomerDirectory, fromEmail, fromName string) *Notifier {
	return &Notifier{
		sender:    sender,
		directory: directory,
		from:      mail.NewEmail(fromName, fromEmail),
	}
}

// NewSendGridClient is the production sender.
func NewSendGridClient(apiKey string) *sendgrid.Client {
	return sendgrid.NewSendClient(apiKey)
}

func (n *Notifier) Notify(ctx context.Context, event ports.OrderEvent) error {
	contact, err := n.directory.Contact(ctx, event.CustomerID)
	if err != nil {
		return fmt.Errorf("resolve contact of customer %s: %w", event.CustomerID, err)
	}
	if contact.Email == "" {
		return fmt.Errorf("customer %s has no email address", event.CustomerID)
	}

	m := compose(event, contact.Name)
	message := mail.NewSingleEmail(n.from, m.subject, mail.NewEmail(contact.Name, contact.Email), m.text, m.html)

	response, err := n.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send %s email: %w", event.Type, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected %s email: status %d, body: %s",
			event.Type, response.StatusCode, response.Body)
	}
	return nil
}

type message struct {
	subject string
	text    string
	html    string
}

func compose(event ports.OrderEvent, name string) message {
	if name == "" {
		name = "there"
	}
	ref := shortRef(event.OrderID.String())

	var subject, body string
	switch event.Type {
	case ports.EventQuotationSubmitted:
		subject = fmt.Sprintf("We received your rental request #%s", ref)
		body = fmt.Sprintf("Your rental request #%s totalling %s per day is waiting for confirmation.",
			ref, event.Total)
	case ports.EventRentalOverdue:
		subject = fmt.Sprintf("Rental #%s is overdue", ref)
		body = fmt.Sprintf("Rental #%s was due back on %s. Please return the items as soon as possible.",
			ref, event.EndDate.Format(time.DateOnly))
	default:
		subject = fmt.Sprintf("Rental #%s is now %s", ref, event.ToStatus)
		body = fmt.Sprintf("The status of rental #%s changed from %s to %s.",
			ref, event.FromStatus, event.ToStatus)
	}

	text := fmt.Sprintf("Hi %s,\n\n%s\n", name, body)
	htmlBody := fmt.Sprintf("<p>Hi %s,</p><p>%s</p>", html.EscapeString(name), html.EscapeString(body))
	return message{subject: subject, text: text, html: htmlBody}
}

func shortRef(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
