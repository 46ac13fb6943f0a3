package http

import (
	"errors"

	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errcodes"
	"restaurant/internal/pkg/errs"
)

// errorScheme maps error classes to the registry codes of one service.
type errorScheme struct {
	validation   errcodes.Code
	notFound     errcodes.Code
	itemNotFound errcodes.Code
	transition   errcodes.Code
	rule         errcodes.Code
	rules        map[error]errcodes.Code
}

var orderErrors = errorScheme{
	validation:   errcodes.OrderValidationFailed,
	notFound:     errcodes.OrderNotFound,
	itemNotFound: errcodes.OrderItemNotFound,
	transition:   errcodes.InvalidStatusTransition,
	rule:         errcodes.OrderRuleViolation,
	rules: map[error]errcodes.Code{
		order.ErrOrderClosed:         errcodes.OrderClosed,
		order.ErrOrderNotCompletable: errcodes.OrderNotCompletable,
	},
}

var kitchenErrors = errorScheme{
	validation:   errcodes.KitchenValidationFailed,
	notFound:     errcodes.KitchenTicketNotFound,
	itemNotFound: errcodes.KitchenItemNotFound,
	transition:   errcodes.KitchenInvalidStatus,
	rule:         errcodes.KitchenRuleViolation,
	rules: map[error]errcodes.Code{
		kitchen.ErrKitchenItemsNotReady: errcodes.KitchenItemsNotReady,
		kitchen.ErrTimerState:           errcodes.KitchenTimerState,
	},
}

// codeFor classifies err. The bool is false for errors with no registry
// mapping; those are reported as Internal without their message.
func (s errorScheme) codeFor(err error) (errcodes.Code, bool) {
	var code errcodes.Code
	if errors.As(err, &code) {
		return code, true
	}

	switch {
	case errs.IsValidation(err):
		return s.validation.WithMessage(err.Error()), true
	case errors.Is(err, errs.ErrObjectNotFound):
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) && isItemParam(notFound.ParamName) {
			return s.itemNotFound.WithMessage(err.Error()), true
		}
		return s.notFound.WithMessage(err.Error()), true
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return s.transition.WithMessage(err.Error()), true
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		for rule, code := range s.rules {
			if errors.Is(err, rule) {
				return code.WithMessage(err.Error()), true
			}
		}
		return s.rule.WithMessage(err.Error()), true
	}
	return errcodes.Internal, false
}

func isItemParam(name string) bool {
	return name == "orderItem" || name == "ticketItem"
}
