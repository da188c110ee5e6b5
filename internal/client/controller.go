// Package client implements the board-side sync controller. It keeps a local
// mirror of the order list from two sources: the push transport when a
// connection is available, and periodic full-snapshot polling otherwise.
package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// DefaultPollInterval is the snapshot polling cadence used while the push
// transport is unavailable.
const DefaultPollInterval = 5 * time.Second

// State is the connection state of the controller.
//
// Transitions:
//
//	CONNECTING ──connect──> CONNECTED
//	CONNECTING ──failure──> POLLING ──retry──> CONNECTING
//	CONNECTED ──disconnect──> POLLING ──retry──> CONNECTING
type State int

const (
	StateConnecting State = iota
	StateConnected
	StatePolling
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StatePolling:
		return "polling"
	}
	return "unknown"
}

// Event is one decoded push notification.
type Event struct {
	Kind    string
	Order   *order.Order
	Orders  []*order.Order
	OrderID string
}

// Transport delivers push events. Subscribe blocks until the subscription is
// established; the returned channel closes when the connection drops or ctx
// is cancelled.
type Transport interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Fetcher retrieves the full order snapshot, used for the initial load after
// connecting and for polling fallback.
type Fetcher interface {
	FetchOrders(ctx context.Context) ([]*order.Order, error)
}

// Controller reconciles local order state from push events and poll results.
// A nil transport means push is unconfigured and the controller polls for its
// whole lifetime.
type Controller struct {
	transport    Transport
	fetcher      Fetcher
	pollInterval time.Duration
	logger       *slog.Logger

	mu         sync.Mutex
	orders     []*order.Order
	state      State
	generation uint64
	onChange   func([]*order.Order)

	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

// NewController creates a sync controller. pollInterval also paces reconnect
// attempts; non-positive falls back to DefaultPollInterval.
func NewController(transport Transport, fetcher Fetcher, pollInterval time.Duration, logger *slog.Logger) *Controller {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Controller{
		transport:    transport,
		fetcher:      fetcher,
		pollInterval: pollInterval,
		logger:       logger.With("component", "sync_controller"),
		orders:       []*order.Order{},
		state:        StateConnecting,
	}
}

// SetOnChange registers a callback invoked with a copy of the order list
// after every applied change. Must be called before Run.
func (c *Controller) SetOnChange(fn func([]*order.Order)) {
	c.onChange = fn
}

// Run drives the state machine until ctx is cancelled. Teardown stops the
// poll timer and the transport subscription unconditionally.
func (c *Controller) Run(ctx context.Context) error {
	defer c.stopPolling()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.setState(StateConnecting)

		if c.transport == nil {
			c.logger.InfoContext(ctx, "Push transport not configured, polling only")
			c.setState(StatePolling)
			c.startPolling(ctx)
			<-ctx.Done()
			return ctx.Err()
		}

		events, err := c.transport.Subscribe(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "Push subscribe failed, falling back to polling", "error", err)
			c.setState(StatePolling)
			c.startPolling(ctx)
			if !c.sleep(ctx) {
				return ctx.Err()
			}
			continue
		}

		c.logger.InfoContext(ctx, "Push transport connected")
		c.stopPolling()
		c.setState(StateConnected)
		c.refetch(ctx)

		for ev := range events {
			c.apply(ev)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.WarnContext(ctx, "Push transport disconnected, falling back to polling")
		c.setState(StatePolling)
		c.startPolling(ctx)
		if !c.sleep(ctx) {
			return ctx.Err()
		}
	}
}

// Orders returns a copy of the current local order list.
func (c *Controller) Orders() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// CurrentState returns the connection state of the controller.
func (c *Controller) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// startPolling launches the poll loop unless one is already running.
func (c *Controller) startPolling(ctx context.Context) {
	c.mu.Lock()
	if c.pollCancel != nil {
		c.mu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.pollCancel = cancel
	c.pollDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		c.refetch(pollCtx)

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				c.refetch(pollCtx)
			}
		}
	}()
}

func (c *Controller) stopPolling() {
	c.mu.Lock()
	cancel := c.pollCancel
	done := c.pollDone
	c.pollCancel = nil
	c.pollDone = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// refetch loads the full snapshot and applies it unless a newer change
// arrived while the request was in flight; stale responses are discarded.
func (c *Controller) refetch(ctx context.Context) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	orders, err := c.fetcher.FetchOrders(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.WarnContext(ctx, "Snapshot fetch failed", "error", err)
		}
		return
	}

	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Discarding stale snapshot fetch")
		return
	}
	c.orders = orders
	c.generation++
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) apply(ev Event) {
	c.mu.Lock()
	switch ev.Kind {
	case ports.EventOrderCreated, ports.EventOrderUpdated:
		if ev.Order == nil {
			c.mu.Unlock()
			return
		}
		c.upsert(ev.Order)
	case ports.EventOrderDeleted:
		kept := c.orders[:0]
		for _, o := range c.orders {
			if o.ID != ev.OrderID {
				kept = append(kept, o)
			}
		}
		c.orders = kept
	case ports.EventOrdersRefresh:
		c.orders = ev.Orders
	default:
		c.mu.Unlock()
		return
	}
	c.generation++
	c.mu.Unlock()

	c.notify()
}

// upsert replaces the order with a matching id in place, or prepends it.
// Prepending on a miss keeps at-least-once delivery harmless.
func (c *Controller) upsert(o *order.Order) {
	for i, existing := range c.orders {
		if existing.ID == o.ID {
			c.orders[i] = o
			return
		}
	}
	c.orders = append([]*order.Order{o}, c.orders...)
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.Orders())
	}
}

// sleep waits one poll interval before the next reconnect attempt.
// Returns false when ctx was cancelled while waiting.
func (c *Controller) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.pollInterval):
		return true
	}
}
