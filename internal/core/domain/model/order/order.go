package order

import (
	"math"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder")

// Details bundles the operator-editable fields of an order. It is accepted
// by NewOrder and ChangeDetails; identity, delivery state, route position,
// and timestamps are managed separately and are never part of an edit.
type Details struct {
	CustomerName string
	Address      string
	DeliveryTime string
	TimeFormat   TimeFormat
	DeliveryDate kernel.Date
	Products     []Product
	Phone        string
	Notes        string
}

// Order represents one customer delivery in the order book. It is the
// aggregate root that manages the order from creation through delivery
// confirmation.
//
// Order maintains these invariants:
//   - id is immutable and is the sole identity key
//   - customerName, address, deliveryTime, and deliveryDate are present, and
//     there is at least one product line
//   - totalAmount equals the sum of the products' line totals, recomputed on
//     every product change
//   - paymentMethod is set if and only if the order is delivered
//   - routeOrder is either unassigned (0) or a positive position within the
//     order's delivery date
//   - createdAt is stamped at first persistence and never changes; updatedAt
//     moves on every persisted mutation
type Order struct {
	id            kernel.UUID
	customerName  string
	address       string
	deliveryTime  string
	timeFormat    TimeFormat
	deliveryDate  kernel.Date
	products      []Product
	paymentMethod PaymentMethod
	isDelivered   bool
	routeOrder    int
	phone         string
	notes         string
	totalAmount   kernel.Money
	createdAt     time.Time
	updatedAt     *time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validated details. The order starts
// undelivered, with no payment method, no route position (the route
// sequencer assigns one on insert), and no timestamps (the store stamps
// them at first persistence).
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := o.setID(id); err != nil {
		return nil, err
	}
	if err := o.applyDetails(details); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID            kernel.UUID
	Details       Details
	PaymentMethod PaymentMethod
	IsDelivered   bool
	RouteOrder    int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// RestoreOrder rehydrates an order from persistence, re-validating every
// invariant including the payment/delivery consistency rule.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(params.ID, params.Details)
	if err != nil {
		return nil, err
	}

	if err = params.PaymentMethod.ValidateForDelivery(params.IsDelivered); err != nil {
		return nil, err
	}
	if params.RouteOrder < 0 {
		return nil, errs.NewValueIsInvalidError("routeOrder")
	}

	o.paymentMethod = params.PaymentMethod
	o.isDelivered = params.IsDelivered
	o.routeOrder = params.RouteOrder
	o.createdAt = params.CreatedAt
	o.updatedAt = params.UpdatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor, for use when receiving aggregates across a boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer the order is for.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// DeliveryTime returns the clock portion of the delivery slot ("8:00").
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// TimeFormat returns the AM/PM half of the delivery slot.
func (o *Order) TimeFormat() TimeFormat {
	return o.timeFormat
}

// DeliveryDate returns the calendar date the order is scheduled for.
func (o *Order) DeliveryDate() kernel.Date {
	return o.deliveryDate
}

// Products returns a copy of the order's line items.
func (o *Order) Products() []Product {
	return append([]Product(nil), o.products...)
}

// PaymentMethod returns how the order was paid, NoPayment while undelivered.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// IsDelivered reports whether delivery has been confirmed.
func (o *Order) IsDelivered() bool {
	return o.isDelivered
}

// RouteOrder returns the order's position within its delivery date, 0 while
// unassigned.
func (o *Order) RouteOrder() int {
	return o.routeOrder
}

// Phone returns the optional contact number.
func (o *Order) Phone() string {
	return o.phone
}

// Notes returns the optional delivery notes.
func (o *Order) Notes() string {
	return o.notes
}

// TotalAmount returns the sum of the line totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the first-persistence timestamp, zero before that.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp, nil before the first
// persisted update.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Details returns the operator-editable fields as a bundle, convenient for
// edit flows that change a few fields and resubmit.
func (o *Order) Details() Details {
	return Details{
		CustomerName: o.customerName,
		Address:      o.address,
		DeliveryTime: o.deliveryTime,
		TimeFormat:   o.timeFormat,
		DeliveryDate: o.deliveryDate,
		Products:     o.Products(),
		Phone:        o.phone,
		Notes:        o.notes,
	}
}

// ChangeDetails replaces the operator-editable fields with validated new
// values. Identity, delivery state, and timestamps are untouched. When the
// delivery date changes the route position is cleared, because routeOrder is
// only meaningful within a single date; the sequencer assigns a fresh
// position under the new date.
func (o *Order) ChangeDetails(details Details) error {
	if err := o.Validate(); err != nil {
		return err
	}

	previousDate := o.deliveryDate
	if err := o.applyDetails(details); err != nil {
		return err
	}

	if !previousDate.IsEqual(o.deliveryDate) {
		o.routeOrder = 0
	}
	return nil
}

// MarkDelivered confirms delivery and records how the order was paid.
// Every other field is preserved verbatim: confirming a delivery must never
// lose order data.
func (o *Order) MarkDelivered(method PaymentMethod) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := method.Validate(); err != nil {
		return err
	}

	o.isDelivered = true
	o.paymentMethod = method
	return nil
}

// AssignRouteOrder positions the order within its delivery date. Positions
// start at 1; only the route sequencer calls this.
func (o *Order) AssignRouteOrder(position int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if position < 1 {
		return errs.NewValueIsOutOfRangeError("routeOrder", position, 1, math.MaxInt)
	}

	o.routeOrder = position
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// applyDetails validates and installs the editable fields as one unit, so a
// failed edit leaves the aggregate unchanged.
func (o *Order) applyDetails(details Details) error {
	if details.CustomerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if details.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if details.DeliveryTime == "" {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	if err := details.TimeFormat.Validate(); err != nil {
		return err
	}
	if err := details.DeliveryDate.Validate(); err != nil {
		return err
	}
	if len(details.Products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	total := kernel.Money{}
	products := make([]Product, 0, len(details.Products))
	for _, p := range details.Products {
		if err := p.Validate(); err != nil {
			return err
		}
		products = append(products, p)
		total = total.Add(p.LineTotal())
	}

	o.customerName = details.CustomerName
	o.address = details.Address
	o.deliveryTime = details.DeliveryTime
	o.timeFormat = details.TimeFormat
	o.deliveryDate = details.DeliveryDate
	o.products = products
	o.phone = details.Phone
	o.notes = details.Notes
	o.totalAmount = total
	return nil
}
