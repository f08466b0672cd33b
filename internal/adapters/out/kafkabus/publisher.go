// Package kafkabus publishes order events to Kafka for downstream consumers.
package kafkabus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rental/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventMessage is the JSON value written to the order-changed topic.
type OrderEventMessage struct {
	Type       string     `json:"type"`
	OrderID    string     `json:"orderId"`
	CustomerID string     `json:"customerId"`
	FromStatus string     `json:"fromStatus,omitempty"`
	ToStatus   string     `json:"toStatus,omitempty"`
	Total      string     `json:"total,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// Publisher implements ports.Notifier. Messages are keyed by order id so that all
// events of one order land on the same partition in commit order.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewWriter builds the topic writer used in production.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Notify(ctx context.Context, event ports.OrderEvent) error {
	value, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s event for order %s: %w", event.Type, event.OrderID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(event ports.OrderEvent) OrderEventMessage {
	msg := OrderEventMessage{
		Type:       string(event.Type),
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		Total:      event.Total,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if !event.EndDate.IsZero() {
		end := event.EndDate.UTC()
		msg.EndDate = &end
	}
	return msg
}
