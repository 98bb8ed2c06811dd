package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to rewrite the editable details of
// an existing order. The full detail set is supplied; the handler recomputes
// prices and the total from the catalog.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	address      string
	deliveryTime string
	timeFormat   order.TimeFormat
	deliveryDate kernel.Date
	lines        []ProductLine
	phone        string
	notes        string

	guard guard.ConstructorGuard
}

// EditOrderParams carries the input for NewEditOrderCommand.
type EditOrderParams struct {
	OrderID      kernel.UUID
	CustomerName string
	Address      string
	DeliveryTime string
	TimeFormat   order.TimeFormat
	DeliveryDate kernel.Date
	Lines        []ProductLine
	Phone        string
	Notes        string
}

// NewEditOrderCommand creates a command to edit an order's details.
// The same field rules as order creation apply.
func NewEditOrderCommand(params EditOrderParams) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(params.OrderID),
		cmd.setCustomer(params.CustomerName, params.Address, params.Phone, params.Notes),
		cmd.setSchedule(params.DeliveryTime, params.TimeFormat, params.DeliveryDate),
		cmd.setLines(params.Lines),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns who the delivery is for.
func (c EditOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery address.
func (c EditOrderCommand) Address() string {
	return c.address
}

// DeliveryTime returns the requested clock time.
func (c EditOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// TimeFormat returns the AM/PM marker for the delivery time.
func (c EditOrderCommand) TimeFormat() order.TimeFormat {
	return c.timeFormat
}

// DeliveryDate returns the calendar date the order is scheduled on.
func (c EditOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// Lines returns the unpriced product lines.
func (c EditOrderCommand) Lines() []ProductLine {
	return c.lines
}

// Phone returns the optional contact number.
func (c EditOrderCommand) Phone() string {
	return c.phone
}

// Notes returns the optional delivery notes.
func (c EditOrderCommand) Notes() string {
	return c.notes
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCustomer(name, address, phone, notes string) error {
	if err := validateCustomer(name, address); err != nil {
		return err
	}

	c.customerName = name
	c.address = address
	c.phone = phone
	c.notes = notes
	return nil
}

func (c *EditOrderCommand) setSchedule(deliveryTime string, format order.TimeFormat, date kernel.Date) error {
	if err := validateSchedule(deliveryTime, format, date); err != nil {
		return err
	}

	c.deliveryTime = deliveryTime
	c.timeFormat = format
	c.deliveryDate = date
	return nil
}

func (c *EditOrderCommand) setLines(lines []ProductLine) error {
	if err := validateProductLines(lines); err != nil {
		return err
	}

	c.lines = lines
	return nil
}
