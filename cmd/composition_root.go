package cmd

import (
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	inrabbitmq "restaurant/internal/adapters/in/rabbitmq"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/deadletterrepo"
	"restaurant/internal/core/application/delivery"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kitchenUoWFactory() commands.KitchenUoWFactory {
	return FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// Order service.

func (c *CompositionRoot) CreateAcceptItemsCommandHandler(
	publisher ports.ItemsAcceptedPublisher,
) *commands.AcceptItemsCommandHandler {
	h := commands.NewAcceptItemsCommandHandler(c.orderUoWFactory(), publisher, c.cfg.OrdersExchange, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(
	publisher ports.OutboxPublisher,
) *commands.RelayOutboxCommandHandler {
	h := commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), publisher)
	return &h
}

func (c *CompositionRoot) CreateOutboxRelayJob(publisher ports.OutboxPublisher) *jobs.OutboxRelayJob {
	return jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.cfg.OutboxRelaySchedule,
		commands.DefaultRelayBatchSize,
		c.logger,
	)
}

// OrderHandlers wires every orders:* pattern.
func (c *CompositionRoot) OrderHandlers(publisher ports.ItemsAcceptedPublisher) httpadapter.OrderHandlers {
	f := c.orderUoWFactory()

	create := commands.NewCreateOrderCommandHandler(f, c.cfg.TaxRate)
	reject := commands.NewRejectItemsCommandHandler(f)
	add := commands.NewAddItemsCommandHandler(f)
	serve := commands.NewServeItemsCommandHandler(f)
	advance := commands.NewAdvanceItemsCommandHandler(f)
	status := commands.NewUpdateOrderStatusCommandHandler(f)
	payment := commands.NewRecordPaymentCommandHandler(f)
	cancel := commands.NewCancelOrderCommandHandler(f)

	return httpadapter.OrderHandlers{
		CreateOrder:   &create,
		AcceptItems:   c.CreateAcceptItemsCommandHandler(publisher),
		RejectItems:   &reject,
		AddItems:      &add,
		ServeItems:    &serve,
		AdvanceItems:  &advance,
		UpdateStatus:  &status,
		RecordPayment: &payment,
		CancelOrder:   &cancel,
		GetOrder:      queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrders:     queries.NewGetOrdersQueryHandler(c.gormDB),
	}
}

// Kitchen service.

func (c *CompositionRoot) CreateIngestPrepareItemsCommandHandler() *commands.IngestPrepareItemsCommandHandler {
	h := commands.NewIngestPrepareItemsCommandHandler(c.kitchenUoWFactory(), c.logger)
	return &h
}

// KitchenTopology names the broker objects of the kitchen queue.
func (c *CompositionRoot) KitchenTopology() (inrabbitmq.Topology, error) {
	return inrabbitmq.NewTopology(c.cfg.OrdersExchange, c.cfg.KitchenQueue, c.cfg.RetryDelay)
}

// CreatePrepareItemsController applies the retry policy to the ingestor.
func (c *CompositionRoot) CreatePrepareItemsController() (*delivery.Controller, error) {
	policy, err := delivery.NewRetryPolicy(c.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	handler := inrabbitmq.NewPrepareItemsHandler(c.CreateIngestPrepareItemsCommandHandler())
	return delivery.NewController(policy, handler, c.logger), nil
}

func (c *CompositionRoot) CreateDeadLetterProcessor() *inrabbitmq.DeadLetterProcessor {
	return inrabbitmq.NewDeadLetterProcessor(
		deadletterrepo.NewGormDeadLetterRepository(c.gormDB),
		c.cfg.RetryDelay,
		c.logger,
	)
}

// KitchenHandlers wires every kitchen:* pattern.
func (c *CompositionRoot) KitchenHandlers() httpadapter.KitchenHandlers {
	f := c.kitchenUoWFactory()

	start := commands.NewStartTicketCommandHandler(f)
	startItems := commands.NewStartItemsCommandHandler(f)
	ready := commands.NewMarkItemsReadyCommandHandler(f)
	bump := commands.NewBumpTicketCommandHandler(f)
	recall := commands.NewRecallItemsCommandHandler(f)
	cancelItems := commands.NewCancelItemsCommandHandler(f)
	cancel := commands.NewCancelTicketCommandHandler(f)
	priority := commands.NewUpdatePriorityCommandHandler(f)
	timer := commands.NewToggleTimerCommandHandler(f)
	reassign := commands.NewReassignTicketCommandHandler(f)

	return httpadapter.KitchenHandlers{
		StartTicket:    &start,
		StartItems:     &startItems,
		MarkItemsReady: &ready,
		BumpTicket:     &bump,
		RecallItems:    &recall,
		CancelItems:    &cancelItems,
		CancelTicket:   &cancel,
		UpdatePriority: &priority,
		ToggleTimer:    &timer,
		ReassignTicket: &reassign,
		GetDisplay:     queries.NewGetKitchenDisplayQueryHandler(c.gormDB),
		GetTickets:     queries.NewGetTicketsQueryHandler(c.gormDB),
		GetStats:       queries.NewGetKitchenStatsQueryHandler(c.gormDB),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
