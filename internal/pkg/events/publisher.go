package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher sends events to background workers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops events. Used when RabbitMQ is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

const (
	// maxDialTimeout bounds a single broker dial. The publisher dials while holding its lock.
	maxDialTimeout = 3 * time.Second
	// dialBackoff is how long publishes fail fast after a dial error.
	dialBackoff = 10 * time.Second
)

// ErrBrokerUnavailable is returned while the publisher waits out a dial backoff.
var ErrBrokerUnavailable = errors.New("rabbitmq unavailable")

// AMQPPublisher publishes persistent JSON messages to a durable queue on the default exchange.
// The connection is opened lazily and re-dialled after failures, at most once per dialBackoff.
type AMQPPublisher struct {
	url    string
	queue  string
	logger zerolog.Logger

	dial func(url string, timeout time.Duration) (*amqp.Connection, error)
	now  func() time.Time

	mu         sync.Mutex
	conn       *amqp.Connection
	ch         *amqp.Channel
	retryAfter time.Time
}

// NewAMQPPublisher creates a publisher for the given broker URL and queue.
func NewAMQPPublisher(url, queue string, logger zerolog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue, logger: logger, dial: dialAMQP, now: time.Now}
}

func dialAMQP(url string, timeout time.Duration) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}

// dialTimeout is the time left on ctx, capped at maxDialTimeout.
func dialTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := maxDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			return 0, context.DeadlineExceeded
		}
		if left < timeout {
			timeout = left
		}
	}
	return timeout, nil
}

func (p *AMQPPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		if now := p.now(); now.Before(p.retryAfter) {
			return nil, fmt.Errorf("%w: next dial in %s", ErrBrokerUnavailable, p.retryAfter.Sub(now).Round(time.Millisecond))
		}
		timeout, err := dialTimeout(ctx)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq dial: %w", err)
		}
		conn, err := p.dial(p.url, timeout)
		if err != nil {
			p.retryAfter = p.now().Add(dialBackoff)
			return nil, fmt.Errorf("rabbitmq dial: %w", err)
		}
		p.conn = conn
		p.retryAfter = time.Time{}
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel open: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	p.ch = ch
	return ch, nil
}

// Publish sends the event as a persistent message routed to the queue.
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(ctx)
	if err != nil {
		p.logger.Error().Err(err).Str("type", event.Type).Msg("RabbitMQ unavailable, event not published")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to publish event")
		_ = ch.Close()
		p.ch = nil
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	p.logger.Debug().Str("type", event.Type).Str("queue", p.queue).Msg("Event published")
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}
