// Package rabbitmq implements the push transport on top of a RabbitMQ fanout
// exchange. The backend publishes lifecycle events with the event kind as the
// routing key; every connected board consumes them through its own exclusive
// queue bound to the exchange.
package rabbitmq

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventsExchange carries all order lifecycle events. Fanout, so each
// subscriber observes every event.
const EventsExchange = "orders.events"

// Connection wraps a single AMQP connection shared by publisher and
// subscriber channels.
type Connection struct {
	conn   *amqp.Connection
	url    string
	mu     sync.RWMutex
	closed bool
}

// Connect dials the broker at the given AMQP URL.
func Connect(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &Connection{conn: conn, url: url}, nil
}

// Channel opens a fresh channel on the connection.
func (c *Connection) Channel() (*amqp.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

// Close shuts the connection down permanently.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

// IsClosed reports whether the connection is unusable.
func (c *Connection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed || c.conn.IsClosed()
}

func declareEventsExchange(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(EventsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare events exchange: %w", err)
	}
	return nil
}
