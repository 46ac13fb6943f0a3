package http

import (
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	orderRequest struct {
		OrderID string `json:"orderId" validate:"required,uuid"`
	}

	itemRequest struct {
		MenuItemID string   `json:"menuItemId" validate:"required"`
		Name       string   `json:"name" validate:"required"`
		Price      string   `json:"price" validate:"required,numeric"`
		Quantity   int      `json:"quantity" validate:"gt=0"`
		Modifiers  []string `json:"modifiers"`
		Notes      string   `json:"notes"`
	}

	createOrderRequest struct {
		TenantID   string        `json:"tenantId" validate:"required"`
		TableID    string        `json:"tableId" validate:"required"`
		CustomerID *string       `json:"customerId"`
		OrderType  string        `json:"orderType"`
		Discount   string        `json:"discount" validate:"omitempty,numeric"`
		Items      []itemRequest `json:"items" validate:"required,min=1,dive"`
	}

	addItemsRequest struct {
		OrderID string        `json:"orderId" validate:"required,uuid"`
		Items   []itemRequest `json:"items" validate:"required,min=1,dive"`
	}

	orderItemsRequest struct {
		OrderID string   `json:"orderId" validate:"required,uuid"`
		ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
	}

	acceptItemsRequest struct {
		OrderID  string   `json:"orderId" validate:"required,uuid"`
		ItemIDs  []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
		WaiterID string   `json:"waiterId"`
	}

	rejectItemsRequest struct {
		OrderID string   `json:"orderId" validate:"required,uuid"`
		ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
		Reason  string   `json:"reason" validate:"required,min=5"`
	}

	advanceItemsRequest struct {
		OrderID string   `json:"orderId" validate:"required,uuid"`
		ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
		Status  string   `json:"status" validate:"required"`
	}

	updateOrderStatusRequest struct {
		OrderID string `json:"orderId" validate:"required,uuid"`
		Status  string `json:"status" validate:"required"`
	}

	recordPaymentRequest struct {
		OrderID       string `json:"orderId" validate:"required,uuid"`
		PaymentStatus string `json:"paymentStatus" validate:"required"`
	}

	cancelOrderRequest struct {
		OrderID string `json:"orderId" validate:"required,uuid"`
		Reason  string `json:"reason"`
	}

	getOrdersRequest struct {
		TenantID string   `json:"tenantId"`
		TableID  string   `json:"tableId"`
		Statuses []string `json:"statuses"`
		Limit    int      `json:"limit" validate:"gte=0"`
		Offset   int      `json:"offset" validate:"gte=0"`
	}
)

// OrderHandlers are the use cases behind the orders:* patterns.
type OrderHandlers struct {
	CreateOrder   UseCase[commands.CreateOrderCommand, *order.Order]
	AcceptItems   UseCase[commands.AcceptItemsCommand, *order.Order]
	RejectItems   UseCase[commands.RejectItemsCommand, *order.Order]
	AddItems      UseCase[commands.AddItemsCommand, *order.Order]
	ServeItems    UseCase[commands.ServeItemsCommand, *order.Order]
	AdvanceItems  UseCase[commands.AdvanceItemsCommand, *order.Order]
	UpdateStatus  UseCase[commands.UpdateOrderStatusCommand, *order.Order]
	RecordPayment UseCase[commands.RecordPaymentCommand, *order.Order]
	CancelOrder   UseCase[commands.CancelOrderCommand, *order.Order]
	GetOrder      UseCase[queries.GetOrderQuery, queries.OrderResponse]
	GetOrders     UseCase[queries.GetOrdersQuery, []queries.OrderResponse]
}

// NewOrderRouter serves the order service patterns.
func NewOrderRouter(h OrderHandlers, logger *slog.Logger) *Router {
	return newRouter("order", orderErrors, map[string]Pattern{
		"orders:create":         createOrder(h.CreateOrder),
		"orders:accept-items":   acceptItems(h.AcceptItems),
		"orders:reject-items":   rejectItems(h.RejectItems),
		"orders:add-items":      addItems(h.AddItems),
		"orders:serve-items":    serveItems(h.ServeItems),
		"orders:advance-items":  advanceItems(h.AdvanceItems),
		"orders:update-status":  updateOrderStatus(h.UpdateStatus),
		"orders:record-payment": recordPayment(h.RecordPayment),
		"orders:cancel":         cancelOrder(h.CancelOrder),
		"orders:get":            getOrder(h.GetOrder),
		"orders:get-all":        getOrders(h.GetOrders),
	}, logger)
}

// runOrder executes a command and renders the resulting order.
func runOrder[C any](c echo.Context, uc UseCase[C, *order.Order], cmd C) (any, error) {
	o, err := uc.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}
	return queries.OrderResponseFromDomain(o), nil
}

func createOrder(uc UseCase[commands.CreateOrderCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[createOrderRequest](c)
		if err != nil {
			return nil, err
		}

		orderType := order.TypeDineIn
		if req.OrderType != "" {
			if orderType, err = order.ParseType(req.OrderType); err != nil {
				return nil, err
			}
		}
		discount := kernel.Zero
		if req.Discount != "" {
			if discount, err = kernel.MoneyFromString(req.Discount); err != nil {
				return nil, err
			}
		}
		items, err := itemInputs(req.Items)
		if err != nil {
			return nil, err
		}

		cmd, err := commands.NewCreateOrderCommand(req.TenantID, req.TableID, req.CustomerID, orderType, discount, items)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func acceptItems(uc UseCase[commands.AcceptItemsCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[acceptItemsRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, itemIDs, err := parseIDs(req.OrderID, "orderId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewAcceptItemsCommand(orderID, itemIDs, req.WaiterID)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func rejectItems(uc UseCase[commands.RejectItemsCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[rejectItemsRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, itemIDs, err := parseIDs(req.OrderID, "orderId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewRejectItemsCommand(orderID, itemIDs, req.Reason)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func addItems(uc UseCase[commands.AddItemsCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[addItemsRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, err := parseID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		items, err := itemInputs(req.Items)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewAddItemsCommand(orderID, items)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func serveItems(uc UseCase[commands.ServeItemsCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[orderItemsRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, itemIDs, err := parseIDs(req.OrderID, "orderId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewServeItemsCommand(orderID, itemIDs)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func advanceItems(uc UseCase[commands.AdvanceItemsCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[advanceItemsRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, itemIDs, err := parseIDs(req.OrderID, "orderId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		status, err := order.ParseItemStatus(req.Status)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewAdvanceItemsCommand(orderID, itemIDs, status)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func updateOrderStatus(uc UseCase[commands.UpdateOrderStatusCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[updateOrderStatusRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, err := parseID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		status, err := order.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func recordPayment(uc UseCase[commands.RecordPaymentCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[recordPaymentRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, err := parseID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		status, err := order.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewRecordPaymentCommand(orderID, status)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func cancelOrder(uc UseCase[commands.CancelOrderCommand, *order.Order]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[cancelOrderRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, err := parseID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
		if err != nil {
			return nil, err
		}
		return runOrder(c, uc, cmd)
	}
}

func getOrder(uc UseCase[queries.GetOrderQuery, queries.OrderResponse]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[orderRequest](c)
		if err != nil {
			return nil, err
		}
		orderID, err := parseID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		query, err := queries.NewGetOrderQuery(orderID)
		if err != nil {
			return nil, err
		}
		return uc.Handle(c.Request().Context(), query)
	}
}

func getOrders(uc UseCase[queries.GetOrdersQuery, []queries.OrderResponse]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[getOrdersRequest](c)
		if err != nil {
			return nil, err
		}

		filter := queries.OrderFilter{
			TenantID: req.TenantID,
			TableID:  req.TableID,
			Limit:    req.Limit,
			Offset:   req.Offset,
		}
		for _, s := range req.Statuses {
			status, err := order.ParseStatus(s)
			if err != nil {
				return nil, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}

		query, err := queries.NewGetOrdersQuery(filter)
		if err != nil {
			return nil, err
		}
		return uc.Handle(c.Request().Context(), query)
	}
}

func itemInputs(reqs []itemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(reqs))
	for _, r := range reqs {
		price, err := kernel.MoneyFromString(r.Price)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.ItemInput{
			MenuItemID: r.MenuItemID,
			Name:       r.Name,
			Price:      price,
			Quantity:   r.Quantity,
			Modifiers:  r.Modifiers,
			Notes:      r.Notes,
		})
	}
	return inputs, nil
}

func parseID(paramName, id string) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

func parseIDs(id, paramName string, itemIDs []string) (kernel.UUID, []kernel.UUID, error) {
	parsed, err := parseID(paramName, id)
	if err != nil {
		return kernel.UUID{}, nil, err
	}
	items, err := kernel.UUIDsFromStrings("itemIds", itemIDs)
	if err != nil {
		return kernel.UUID{}, nil, err
	}
	return parsed, items, nil
}
