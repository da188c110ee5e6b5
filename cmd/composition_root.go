package cmd

import (
	"log/slog"

	"orderboard/internal/adapters/out/fanout"
	"orderboard/internal/adapters/out/filestore"
	"orderboard/internal/adapters/out/rabbitmq"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/lock"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	store    ports.SnapshotStore
	gate     *lock.Gate
	notifier *fanout.Fanout
	rabbit   *rabbitmq.Connection
}

// NewCompositionRoot wires the shared infrastructure once: the snapshot
// store, the write gate and the event fanout. When no AMQP URL is configured
// the fanout gets a nil publisher and events become no-ops.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	store, err := filestore.NewStore(config.DataDir, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		config: config,
		logger: logger,
		store:  store,
		gate:   lock.NewGate(lock.DefaultTimeout),
	}

	var publisher ports.EventPublisher
	if config.AmqpURL != "" {
		conn, err := rabbitmq.Connect(config.AmqpURL)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.rabbit = conn
		publisher = rabbitmq.NewPublisher(conn)
	} else {
		logger.Info("AMQP_URL not set, order events disabled")
	}
	root.notifier = fanout.New(publisher, logger)

	return root, nil
}

// Close releases the broker connection when one was opened.
func (c *CompositionRoot) Close() error {
	if c.rabbit != nil {
		return c.rabbit.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.gate, c.store, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.gate, c.store, c.notifier)
}

func (c *CompositionRoot) CreateAdvanceStatusesCommandHandler() commands.AdvanceStatusesCommandHandler {
	return commands.NewAdvanceStatusesCommandHandler(c.gate, c.store, c.notifier)
}

func (c *CompositionRoot) CreateCleanupOrdersCommandHandler() commands.CleanupOrdersCommandHandler {
	return commands.NewCleanupOrdersCommandHandler(c.gate, c.store)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.gate, c.store, c.notifier)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}
