package email

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct{ mock.Mock }

func (m *mockSender) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}

type mockDirectory struct{ mock.Mock }

func (m *mockDirectory) Contact(ctx context.Context, customerID kernel.UUID) (ports.Contact, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(ports.Contact), args.Error(1)
}

func statusEvent() ports.OrderEvent {
	return ports.OrderEvent{
		Type:       ports.EventStatusChanged,
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		FromStatus: "PENDING",
		ToStatus:   "CONFIRMED",
		Total:      "30.00",
		OccurredAt: time.Now(),
	}
}

func TestNotifier_Notify_SendsToCustomer(t *testing.T) {
	sender, directory := new(mockSender), new(mockDirectory)
	event := statusEvent()

	directory.On("Contact", mock.Anything, event.CustomerID).
		Return(ports.Contact{Email: "ada@example.com", Name: "Ada"}, nil)

	var sent *mail.SGMailV3
	sender.On("SendWithContext", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mail.SGMailV3) }).
		Return(&rest.Response{StatusCode: http.StatusAccepted}, nil).Once()

	err := NewNotifier(sender, directory, "shop@example.com", "Rentals").Notify(t.Context(), event)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "shop@example.com", sent.From.Address)
	assert.Contains(t, sent.Subject, "is now CONFIRMED")
	require.Len(t, sent.Personalizations, 1)
	assert.Equal(t, "ada@example.com", sent.Personalizations[0].To[0].Address)
	sender.AssertExpectations(t)
}

func TestNotifier_Notify_DirectoryError(t *testing.T) {
	sender, directory := new(mockSender), new(mockDirectory)
	directory.On("Contact", mock.Anything, mock.Anything).Return(ports.Contact{}, errors.New("no such user"))

	err := NewNotifier(sender, directory, "shop@example.com", "Rentals").Notify(t.Context(), statusEvent())

	require.Error(t, err)
	sender.AssertNotCalled(t, "SendWithContext", mock.Anything, mock.Anything)
}

func TestNotifier_Notify_Rejected(t *testing.T) {
	sender, directory := new(mockSender), new(mockDirectory)
	directory.On("Contact", mock.Anything, mock.Anything).Return(ports.Contact{Email: "ada@example.com"}, nil)
	sender.On("SendWithContext", mock.Anything, mock.Anything).
		Return(&rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}, nil)

	err := NewNotifier(sender, directory, "shop@example.com", "Rentals").Notify(t.Context(), statusEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCompose(t *testing.T) {
	event := statusEvent()
	event.Type = ports.EventRentalOverdue
	event.EndDate = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	m := compose(event, "<Ada>")

	assert.Contains(t, m.subject, "is overdue")
	assert.Contains(t, m.text, "2026-06-30")
	assert.Contains(t, m.html, "&lt;Ada&gt;")

	submitted := compose(ports.OrderEvent{Type: ports.EventQuotationSubmitted, OrderID: kernel.NewUUID()}, "")
	assert.Contains(t, submitted.text, "Hi there")
}
