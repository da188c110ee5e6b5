package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"orderboard/internal/core/ports"
)

type publisher struct {
	conn *Connection
}

// NewPublisher creates an EventPublisher that emits lifecycle events to the
// events exchange, one short-lived channel per publish.
func NewPublisher(conn *Connection) ports.EventPublisher {
	return &publisher{conn: conn}
}

func (p *publisher) Publish(ctx context.Context, kind string, payload any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := declareEventsExchange(ch); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = ch.PublishWithContext(ctx, EventsExchange, kind, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", kind, err)
	}

	return nil
}
