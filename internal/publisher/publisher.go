// Package publisher pushes schedule change events to RabbitMQ.  Delivery
// is strictly fire-and-forget: every error is logged and returned, and no
// caller lets a broker failure interrupt the booking flow.
package publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mzali/radio-booking/internal/queue"
)

// Publisher publishes to one broker URL.  An empty URL disables
// publishing entirely, which is the default when no broker is configured.
type Publisher struct {
	url string
}

// New returns a Publisher for the given AMQP URL (empty to disable).
func New(url string) *Publisher { return &Publisher{url: url} }

// ShowChanged publishes a ShowChangedEvent to the schedule.changed queue.
// Messages are persistent and the queue is declared durable so events
// survive broker restarts.  Errors are logged and returned; callers are
// expected to ignore them.
func (p *Publisher) ShowChanged(ctx context.Context, ev queue.ShowChangedEvent) error {
	if p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue.ShowChangedQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(pubCtx, "", queue.ShowChangedQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
