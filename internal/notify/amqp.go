// Package notify publishes transaction events to a message broker so
// downstream workers (budget alerts, sync jobs) can react without the
// core waiting on them.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"spendo/internal/transaction"
)

// TransactionCreatedEvent is the wire payload for a new transaction.
type TransactionCreatedEvent struct {
	Transaction transaction.Transaction `json:"transaction"`
	OccurredAt  time.Time               `json:"occurred_at"`
}

// AMQPPublisher implements transaction.Notifier over a RabbitMQ direct
// exchange. One queue is declared and bound under the routing key equal
// to the queue name.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

func NewAMQPPublisher(url, exchange, queue string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}

	if err := p.declare(); err != nil {
		p.Close()
		return nil, fmt.Errorf("declare exchange and queue: %w", err)
	}

	return p, nil
}

func (p *AMQPPublisher) declare() error {
	err := p.channel.ExchangeDeclare(
		p.exchange,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(
		p.queue,
		p.queue, // routing key, same as queue name on a direct exchange
		p.exchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// TransactionCreated publishes the event with persistent delivery. The
// publish is bounded to five seconds regardless of the caller's context.
func (p *AMQPPublisher) TransactionCreated(ctx context.Context, tx transaction.Transaction) error {
	body, err := json.Marshal(TransactionCreatedEvent{
		Transaction: tx,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.queue,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
