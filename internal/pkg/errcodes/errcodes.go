// Package errcodes is the registry of stable error codes shared by every service.
// Each RPC error response carries one Code triple. Ranges:
//
//	1000s auth, 2000s user, 3000s menu, 4000s order/table,
//	4700s kitchen, 6000s notification, 9000s infrastructure.
package errcodes

import (
	"fmt"
	"net/http"
)

// Code is the {code, message, status} triple returned to RPC callers.
type Code struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// WithMessage returns a copy of c carrying a more specific message.
func (c Code) WithMessage(msg string) Code {
	c.Message = msg
	return c
}

func (c Code) Error() string {
	return fmt.Sprintf("%d: %s", c.Code, c.Message)
}

// Auth.
var (
	Unauthorized = Code{Code: 1001, Message: "authentication required", Status: http.StatusUnauthorized}
	Forbidden    = Code{Code: 1003, Message: "access denied", Status: http.StatusForbidden}
)

// User.
var (
	UserNotFound = Code{Code: 2001, Message: "user not found", Status: http.StatusNotFound}
)

// Menu.
var (
	MenuItemNotFound    = Code{Code: 3001, Message: "menu item not found", Status: http.StatusNotFound}
	MenuItemUnavailable = Code{Code: 3002, Message: "menu item unavailable", Status: http.StatusConflict}
)

// Order and table.
var (
	OrderValidationFailed   = Code{Code: 4000, Message: "order request is invalid", Status: http.StatusBadRequest}
	OrderNotFound           = Code{Code: 4001, Message: "order not found", Status: http.StatusNotFound}
	OrderItemNotFound       = Code{Code: 4002, Message: "order item not found", Status: http.StatusNotFound}
	InvalidStatusTransition = Code{Code: 4003, Message: "invalid status transition", Status: http.StatusConflict}
	OrderClosed             = Code{Code: 4004, Message: "order is closed", Status: http.StatusConflict}
	OrderNotCompletable     = Code{Code: 4005, Message: "order cannot be completed", Status: http.StatusConflict}
	OrderRuleViolation      = Code{Code: 4006, Message: "order rule violated", Status: http.StatusUnprocessableEntity}
	TableNotFound           = Code{Code: 4101, Message: "table not found", Status: http.StatusNotFound}
)

// Kitchen.
var (
	KitchenValidationFailed = Code{Code: 4700, Message: "kitchen request is invalid", Status: http.StatusBadRequest}
	KitchenTicketNotFound   = Code{Code: 4701, Message: "kitchen ticket not found", Status: http.StatusNotFound}
	KitchenItemNotFound     = Code{Code: 4702, Message: "kitchen ticket item not found", Status: http.StatusNotFound}
	KitchenItemsNotReady    = Code{Code: 4703, Message: "kitchen items not ready", Status: http.StatusConflict}
	KitchenInvalidStatus    = Code{Code: 4704, Message: "invalid kitchen status transition", Status: http.StatusConflict}
	KitchenTimerState       = Code{Code: 4705, Message: "kitchen timer is already in that state", Status: http.StatusConflict}
	KitchenRuleViolation    = Code{Code: 4706, Message: "kitchen rule violated", Status: http.StatusUnprocessableEntity}
)

// Notification.
var (
	NotificationFailed = Code{Code: 6001, Message: "notification delivery failed", Status: http.StatusBadGateway}
)

// Infrastructure.
var (
	Internal            = Code{Code: 9000, Message: "internal error", Status: http.StatusInternalServerError}
	ValidationFailed    = Code{Code: 9001, Message: "request payload is invalid", Status: http.StatusBadRequest}
	UnknownPattern      = Code{Code: 9002, Message: "unknown message pattern", Status: http.StatusNotFound}
	DatabaseUnavailable = Code{Code: 9003, Message: "database unavailable", Status: http.StatusServiceUnavailable}
	BrokerUnavailable   = Code{Code: 9004, Message: "message broker unavailable", Status: http.StatusServiceUnavailable}
)

var all = []Code{
	Unauthorized, Forbidden,
	UserNotFound,
	MenuItemNotFound, MenuItemUnavailable,
	OrderValidationFailed, OrderNotFound, OrderItemNotFound, InvalidStatusTransition,
	OrderClosed, OrderNotCompletable, OrderRuleViolation, TableNotFound,
	KitchenValidationFailed, KitchenTicketNotFound, KitchenItemNotFound, KitchenItemsNotReady,
	KitchenInvalidStatus, KitchenTimerState, KitchenRuleViolation,
	NotificationFailed,
	Internal, ValidationFailed, UnknownPattern, DatabaseUnavailable, BrokerUnavailable,
}

// All returns every registered code.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// Lookup finds a registered code by number.
func Lookup(code int) (Code, bool) {
	for _, c := range all {
		if c.Code == code {
			return c, true
		}
	}
	return Code{}, false
}
