package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"orderboard/internal/client"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// Subscriber consumes lifecycle events through an exclusive queue bound to
// the events exchange. It implements client.Transport.
type Subscriber struct {
	conn   *Connection
	logger *slog.Logger
}

func NewSubscriber(conn *Connection, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		conn:   conn,
		logger: logger.With("component", "rabbitmq_subscriber"),
	}
}

// Subscribe binds a fresh exclusive queue to the events exchange and starts
// consuming. The returned channel closes when the AMQP channel drops or ctx
// is cancelled; the caller decides how to recover.
func (s *Subscriber) Subscribe(ctx context.Context) (<-chan client.Event, error) {
	ch, err := s.conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := declareEventsExchange(ch); err != nil {
		ch.Close()
		return nil, err
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare subscriber queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, "", EventsExchange, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to bind subscriber queue: %w", err)
	}

	consumerTag := "board-" + uuid.NewString()
	deliveries, err := ch.Consume(q.Name, consumerTag, true, true, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	events := make(chan client.Event)
	closeChan := ch.NotifyClose(make(chan *amqp.Error, 1))

	go func() {
		defer close(events)
		defer ch.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case amqpErr := <-closeChan:
				if amqpErr != nil {
					s.logger.WarnContext(ctx, "AMQP channel closed", "error", amqpErr)
				}
				return

			case msg, ok := <-deliveries:
				if !ok {
					return
				}

				ev, err := decodeEvent(msg.RoutingKey, msg.Body)
				if err != nil {
					s.logger.WarnContext(ctx, "Dropping undecodable event", "kind", msg.RoutingKey, "error", err)
					continue
				}

				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// decodeEvent maps a routing key and JSON body onto the client event shape.
func decodeEvent(kind string, body []byte) (client.Event, error) {
	ev := client.Event{Kind: kind}

	switch kind {
	case ports.EventOrderCreated, ports.EventOrderUpdated:
		var o order.Order
		if err := json.Unmarshal(body, &o); err != nil {
			return client.Event{}, err
		}
		ev.Order = &o

	case ports.EventOrderDeleted:
		var payload struct {
			OrderID string `json:"orderId"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return client.Event{}, err
		}
		ev.OrderID = payload.OrderID

	case ports.EventOrdersRefresh:
		var orders []*order.Order
		if err := json.Unmarshal(body, &orders); err != nil {
			return client.Event{}, err
		}
		ev.Orders = orders

	default:
		return client.Event{}, fmt.Errorf("unknown event kind %q", kind)
	}

	return ev, nil
}
