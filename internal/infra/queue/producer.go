package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event kinds published on the lead event bus.
const (
	EventLeadsImported   = "lead.imported"
	EventOutcomeRecorded = "lead.outcome"
)

// LeadEventPayload is the wire shape for both event kinds. Import events
// fill BatchID/Imported; outcome events fill LeadID/Agent/Status.
type LeadEventPayload struct {
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	BatchID    string    `json:"batch_id,omitempty"`
	Imported   int       `json:"imported,omitempty"`
	LeadID     int       `json:"lead_id,omitempty"`
	Agent      string    `json:"agent,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish lead event: %v", err)
	}

	return nil
}
