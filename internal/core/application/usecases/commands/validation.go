package commands

import (
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

func validateIDs(paramName string, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError(paramName)
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
	}
	return nil
}

// ItemInput describes one line of a new or extended order. Price is the menu
// price snapshot taken by the caller.
type ItemInput struct {
	MenuItemID string
	Name       string
	Price      kernel.Money
	Quantity   int
	Modifiers  []string
	Notes      string
}

func buildItems(inputs []ItemInput) ([]*order.Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(
			strings.TrimSpace(in.MenuItemID),
			strings.TrimSpace(in.Name),
			in.Price,
			in.Quantity,
			in.Modifiers,
			strings.TrimSpace(in.Notes),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
