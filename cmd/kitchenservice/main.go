package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/rabbitmq"
	"restaurant/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(configs, "kitchen-service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.NewConnection(ctx, configs.Database())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.MigrateKitchen(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer conn.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	topology, err := app.KitchenTopology()
	if err != nil {
		log.Fatalf("Invalid queue topology: %v", err)
	}
	if err = declare(conn, topology); err != nil {
		log.Fatalf("Error declaring queue topology: %v", err)
	}

	controller, err := app.CreatePrepareItemsController()
	if err != nil {
		log.Fatalf("Invalid retry policy: %v", err)
	}

	kitchenConsumer := rabbitmq.NewConsumer(conn, rabbitmq.ConsumerConfig{
		Queue:         topology.Queue,
		RetryExchange: topology.RetryExchange(),
		Prefetch:      configs.Prefetch,
		Tag:           "kitchen-service",
	}, controller, logger)

	deadLetterConsumer := rabbitmq.NewConsumer(conn, rabbitmq.ConsumerConfig{
		Queue:    topology.DeadLetterQueue(),
		Prefetch: configs.Prefetch,
		Tag:      "kitchen-service-dlq",
	}, app.CreateDeadLetterProcessor(), logger)

	contract, err := httpadapter.KitchenContract()
	if err != nil {
		log.Fatalf("Invalid API contract: %v", err)
	}

	e := cmd.NewEcho()
	httpadapter.NewKitchenRouter(app.KitchenHandlers(), logger).WithContract(contract).Register(e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return kitchenConsumer.Run(gctx) })
	g.Go(func() error { return deadLetterConsumer.Run(gctx) })
	g.Go(func() error { return cmd.RunWebServer(gctx, e, configs.HTTPPort, logger) })

	if err = g.Wait(); err != nil {
		logger.Error("kitchen service stopped", "error", err)
	}
}

func declare(conn *amqp.Connection, topology rabbitmq.Topology) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return topology.Declare(ch)
}
