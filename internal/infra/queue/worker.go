package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Worker is the audit consumer for the lead event bus: it drains
// q.lead-events, logging every import batch and call outcome. External
// systems can bind their own queues to ex.outreach; this worker only keeps
// an operational trail.
type Worker struct {
	Channel *amqp.Channel
}

func NewWorker(ch *amqp.Channel) *Worker {
	return &Worker{Channel: ch}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid event payload: %s", err)
				// Malformed message. Reject without requeue so the DLQ
				// takes it instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			switch payload.Kind {
			case EventLeadsImported:
				log.Printf("[WORKER] batch %s imported %d leads", payload.BatchID, payload.Imported)
			case EventOutcomeRecorded:
				log.Printf("[WORKER] lead %d -> %s (agent %s)", payload.LeadID, payload.Status, payload.Agent)
			default:
				log.Printf("[WORKER] unknown event kind %q, acking anyway", payload.Kind)
			}
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Audit worker waiting on queue '%s'", queueName)
	<-forever
}
