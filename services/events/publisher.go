package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/tracing"
	"github.com/mailtriage/mailtriage/internal/utils"
)

// EmailProcessedEvent is published after a new email has been classified
// and persisted. Duplicates do not produce events.
type EmailProcessedEvent struct {
	EmailID     string    `json:"emailId"`
	Fingerprint string    `json:"fingerprint"`
	ProcessedAt time.Time `json:"processedAt"`
}

type rabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      logger.Logger
}

// NewRabbitEventPublisher connects to RabbitMQ and declares a durable fanout
// exchange for processed-email events.
func NewRabbitEventPublisher(url, exchange string, log logger.Logger) (interfaces.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbitmq")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrap(err, "failed to declare exchange")
	}

	return &rabbitPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      log,
	}, nil
}

func (p *rabbitPublisher) PublishEmailProcessed(ctx context.Context, emailID, fingerprint string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rabbitPublisher.PublishEmailProcessed")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	event := EmailProcessedEvent{
		EmailID:     emailID,
		Fingerprint: fingerprint,
		ProcessedAt: utils.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to marshal event")
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   event.ProcessedAt,
	})
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to publish event")
	}

	p.log.Debugf("published email.processed event for %s", emailID)
	return nil
}

func (p *rabbitPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

type noopPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() interfaces.EventPublisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishEmailProcessed(ctx context.Context, emailID, fingerprint string) error {
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
