package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a request to mark an order as handed
// over, recording how it was paid. Delivery always carries a payment
// method; an order cannot be delivered unpaid.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order delivered
// with the given payment method.
func NewMarkDeliveredCommand(orderID kernel.UUID, method order.PaymentMethod) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentMethod(method),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark delivered.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns how the order was paid.
func (c MarkDeliveredCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
