package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Type is how the order is fulfilled.
type Type int

const (
	TypeUnknown Type = iota
	TypeDineIn
	TypeTakeaway
	TypeDelivery
)

var typeNames = map[Type]string{
	TypeDineIn:   "DINE_IN",
	TypeTakeaway: "TAKEAWAY",
	TypeDelivery: "DELIVERY",
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", s))
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}
