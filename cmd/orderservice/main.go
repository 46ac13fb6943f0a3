package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/jobs"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(configs, "order-service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.NewConnection(ctx, configs.Database())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.MigrateOrders(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer conn.Close()

	publisher, err := rabbitmq.NewPublisher(conn, configs.OrdersExchange)
	if err != nil {
		log.Fatalf("Error creating publisher: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateOutboxRelayJob(publisher))
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	contract, err := httpadapter.OrderContract()
	if err != nil {
		log.Fatalf("Invalid API contract: %v", err)
	}

	e := cmd.NewEcho()
	httpadapter.NewOrderRouter(app.OrderHandlers(publisher), logger).WithContract(contract).Register(e)

	if err = cmd.RunWebServer(ctx, e, configs.HTTPPort, logger); err != nil {
		logger.Error("http server stopped", "error", err)
	}
}
