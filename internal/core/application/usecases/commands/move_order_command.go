package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrMoveOrderCommandIsNotConstructed = errors.New(
	"MoveOrderCommand must be created via NewMoveOrderCommand constructor",
)

// MoveOrderCommand represents a request to move an order to a different
// position within its delivery date's route.
type MoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	targetPosition int

	guard guard.ConstructorGuard
}

// NewMoveOrderCommand creates a command to move the order to the given
// 1-based route position.
func NewMoveOrderCommand(orderID kernel.UUID, targetPosition int) (MoveOrderCommand, error) {
	cmd := MoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetPosition(targetPosition),
	); err != nil {
		return MoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c MoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetPosition returns the 1-based position the order should take.
func (c MoveOrderCommand) TargetPosition() int {
	return c.targetPosition
}

func (c *MoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MoveOrderCommand) setTargetPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidError("targetPosition")
	}

	c.targetPosition = position
	return nil
}
