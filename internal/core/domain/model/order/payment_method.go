package order

import (
	"fmt"

	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// PaymentMethod records how a delivered order was paid. It is only ever set
// together with the delivered flag: an undelivered order has NoPayment, a
// delivered order has exactly one of the concrete methods.
type PaymentMethod int

const (
	// NoPayment means no payment has been recorded yet. This is the only
	// valid value while an order is undelivered.
	NoPayment PaymentMethod = iota

	// PaymentTransfer marks payment by bank transfer.
	PaymentTransfer

	// PaymentCash marks payment in cash on delivery.
	PaymentCash
)

// PaymentMethodFromString parses the wire form "transfer" or "cash". The
// empty string maps to NoPayment so that undelivered orders round-trip.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "":
		return NoPayment, nil
	case "transfer":
		return PaymentTransfer, nil
	case "cash":
		return PaymentCash, nil
	default:
		return NoPayment, errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not transfer or cash", s))
	}
}

// Validate rejects everything but the concrete methods. Delivery
// confirmation must name a method, so NoPayment does not pass.
func (p PaymentMethod) Validate() error {
	if p != PaymentTransfer && p != PaymentCash {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// ValidateForDelivery checks the consistency rule between payment and
// delivery state: a payment method is present if and only if the order is
// delivered.
func (p PaymentMethod) ValidateForDelivery(isDelivered bool) error {
	if isDelivered && p == NoPayment {
		return errs.NewValueIsRequiredError("paymentMethod of a delivered order")
	}
	if !isDelivered && p != NoPayment {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("undelivered order cannot have payment method %s", p))
	}
	return nil
}

// String returns the wire form: "transfer", "cash", or "" for NoPayment.
func (p PaymentMethod) String() string {
	switch p {
	case PaymentTransfer:
		return "transfer"
	case PaymentCash:
		return "cash"
	default:
		return ""
	}
}
