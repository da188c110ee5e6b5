package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"orderboard/cmd"
	adapterhttp "orderboard/internal/adapters/in/http"
	"orderboard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.Close()

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceStatusesCommandHandler(),
		app.CreateCleanupOrdersCommandHandler(),
		configs.CleanupDays,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "4000"),
		DataDir:     envOrDefault("DATA_DIR", "data"),
		AmqpURL:     os.Getenv("AMQP_URL"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		CleanupDays: envIntOrDefault("CLEANUP_DAYS", 7),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return value
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCleanupOrdersCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, configs.AdminToken)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
