package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailDeliverer is the delivery backend the worker drains the queue into.
// Satisfied by mail.Sender.
type EmailDeliverer interface {
	Send(to, subject, content string) error
}

// Worker consumes outbound email messages and delivers them over SMTP. It
// only touches the queue and the deliverer; records were already persisted
// by the handler.
type Worker struct {
	Channel   *amqp.Channel
	Deliverer EmailDeliverer
}

func NewWorker(ch *amqp.Channel, deliverer EmailDeliverer) *Worker {
	return &Worker{Channel: ch, Deliverer: deliverer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("[WORKER] consume %s: %s", queueName, err)
	}

	log.Printf("[WORKER] waiting on queue %q", queueName)

	for d := range msgs {
		var payload OutboundEmail
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("[WORKER] malformed message, rejecting: %s", err)
			// Malformed payloads go to the DLQ, never back on the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.Deliverer.Send(payload.To, payload.Subject, payload.Content); err != nil {
			log.Printf("[WORKER] delivery of %s failed: %s", payload.ID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("[WORKER] email %s delivered to %s", payload.ID, payload.To)
		d.Ack(false)
	}
}
