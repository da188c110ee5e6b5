package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"orderboard/internal/adapters/out/rabbitmq"
	"orderboard/internal/client"
	"orderboard/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// kitchen-board renders a live view of the order list in the terminal.
// It subscribes to the broker for push updates and falls back to polling
// the HTTP API when the broker is unreachable.
func main() {
	_ = godotenv.Load(".env")

	apiURL := envOrDefault("API_URL", "http://localhost:4000")
	amqpURL := os.Getenv("AMQP_URL")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var transport client.Transport
	if amqpURL != "" {
		conn, err := rabbitmq.Connect(amqpURL)
		if err != nil {
			log.Fatalf("Failed to connect to broker: %v", err)
		}
		defer conn.Close()
		transport = rabbitmq.NewSubscriber(conn, logger)
	} else {
		logger.Info("AMQP_URL not set, polling only")
	}

	controller := client.NewController(
		transport,
		client.NewHTTPFetcher(apiURL),
		client.DefaultPollInterval,
		logger,
	)
	controller.SetOnChange(func(orders []*order.Order) {
		render(controller.CurrentState(), orders)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := controller.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Controller stopped: %v", err)
	}
}

func render(state client.State, orders []*order.Order) {
	fmt.Print("\033[H\033[2J")
	fmt.Printf("Kitchen board (%s) - %d orders\n\n", state, len(orders))

	for _, o := range orders {
		fmt.Printf("%-10s %-16s $%.2f", o.OrderNumber, o.Status, o.Total)
		if o.ManualOverride {
			fmt.Print("  [pinned]")
		}
		fmt.Println()
		for _, item := range o.Items {
			fmt.Printf("    %dx %s %s\n", item.Quantity, item.Name, item.Emoji)
		}
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
