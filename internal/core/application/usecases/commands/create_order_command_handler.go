package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler places new orders. Every order is taxed at the
// rate configured for the service at placement time.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, decimal.RequireFromString("0.1"))
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// o.Status() == order.StatusPending
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	taxRate    decimal.Decimal
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, taxRate decimal.Decimal) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		taxRate:    taxRate,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.TenantID(),
		cmd.TableID(),
		cmd.CustomerID(),
		cmd.OrderType(),
		h.taxRate,
		cmd.Discount(),
		items,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
