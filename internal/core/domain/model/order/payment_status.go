package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// PaymentStatus tracks settlement of the tab. UNPAID -> PAID -> REFUNDED.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusUnpaid
	PaymentStatusPaid
	PaymentStatusRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentStatusUnpaid:   "UNPAID",
	PaymentStatusPaid:     "PAID",
	PaymentStatusRefunded: "REFUNDED",
}

var paymentTransitions = map[PaymentStatus]map[PaymentStatus]struct{}{
	PaymentStatusUnpaid:   {PaymentStatusPaid: {}},
	PaymentStatusPaid:     {PaymentStatusRefunded: {}},
	PaymentStatusRefunded: {},
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) TransitionTo(next PaymentStatus) (PaymentStatus, error) {
	if _, ok := paymentTransitions[s][next]; !ok {
		return s, errs.NewInvalidStatusTransitionError("payment", s, next)
	}
	return next, nil
}
