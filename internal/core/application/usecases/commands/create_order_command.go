package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new home delivery
// order. Product lines carry no prices; the handler prices them against
// the catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    OrderID:      kernel.NewUUID(),
//	    CustomerName: "Doña Marta",
//	    Address:      "Calle 45 #12-30",
//	    DeliveryTime: "8:00",
//	    TimeFormat:   order.AM,
//	    DeliveryDate: date,
//	    Lines:        []ProductLine{{Name: "Arepas de maíz", Quantity: 10, Unit: "unidades"}},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
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

// CreateOrderParams carries the input for NewCreateOrderCommand.
type CreateOrderParams struct {
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

// NewCreateOrderCommand creates a command to register a new order.
// Validates the id, the required customer fields, the schedule, and every
// product line. Returns an error if any validation fails.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(params.OrderID),
		cmd.setCustomer(params.CustomerName, params.Address, params.Phone, params.Notes),
		cmd.setSchedule(params.DeliveryTime, params.TimeFormat, params.DeliveryDate),
		cmd.setLines(params.Lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns who the delivery is for.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryTime returns the requested clock time.
func (c CreateOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// TimeFormat returns the AM/PM marker for the delivery time.
func (c CreateOrderCommand) TimeFormat() order.TimeFormat {
	return c.timeFormat
}

// DeliveryDate returns the calendar date the order is scheduled on.
func (c CreateOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// Lines returns the unpriced product lines.
func (c CreateOrderCommand) Lines() []ProductLine {
	return c.lines
}

// Phone returns the optional contact number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Notes returns the optional delivery notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, address, phone, notes string) error {
	if err := validateCustomer(name, address); err != nil {
		return err
	}

	c.customerName = name
	c.address = address
	c.phone = phone
	c.notes = notes
	return nil
}

func (c *CreateOrderCommand) setSchedule(deliveryTime string, format order.TimeFormat, date kernel.Date) error {
	if err := validateSchedule(deliveryTime, format, date); err != nil {
		return err
	}

	c.deliveryTime = deliveryTime
	c.timeFormat = format
	c.deliveryDate = date
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ProductLine) error {
	if err := validateProductLines(lines); err != nil {
		return err
	}

	c.lines = lines
	return nil
}
