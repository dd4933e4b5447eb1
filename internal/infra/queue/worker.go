package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier is the contract the worker drives for each captured lead
// (today: intake-inbox notification plus prospect confirmation mail).
type LeadNotifier interface {
	NotifyLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
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
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] notifying for lead %s (%s %s)", payload.LeadID, payload.FirstName, payload.LastName)

			if err := w.Notifier.NotifyLeadCaptured(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] notification failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
