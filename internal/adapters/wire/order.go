// Package wire defines the JSON payload shapes orders travel in outside
// the core: the HTTP API bodies and the local snapshot cache share them.
// Fields are camelCase, money amounts are decimal strings, dates use the
// ISO calendar form and timestamps RFC 3339.
package wire

import (
	"errors"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// Product is the payload form of a single order line.
type Product struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// Order is the payload form of an order aggregate.
type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	Address       string    `json:"address"`
	DeliveryTime  string    `json:"deliveryTime"`
	TimeFormat    string    `json:"timeFormat"`
	DeliveryDate  string    `json:"deliveryDate"`
	Products      []Product `json:"products"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	IsDelivered   bool      `json:"isDelivered"`
	RouteOrder    int       `json:"routeOrder"`
	Phone         string    `json:"phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	TotalAmount   string    `json:"totalAmount"`
	CreatedAt     string    `json:"createdAt,omitempty"`
	UpdatedAt     string    `json:"updatedAt,omitempty"`
}

// FromDomain converts an order aggregate to its payload form.
func FromDomain(aggregate *order.Order) Order {
	products := make([]Product, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		products = append(products, Product{
			Name:     p.Name(),
			Quantity: p.Quantity(),
			Unit:     p.Unit(),
			Price:    p.UnitPrice().String(),
			Total:    p.LineTotal().String(),
		})
	}

	payload := Order{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		Address:       aggregate.Address(),
		DeliveryTime:  aggregate.DeliveryTime(),
		TimeFormat:    aggregate.TimeFormat().String(),
		DeliveryDate:  aggregate.DeliveryDate().String(),
		Products:      products,
		PaymentMethod: aggregate.PaymentMethod().String(),
		IsDelivered:   aggregate.IsDelivered(),
		RouteOrder:    aggregate.RouteOrder(),
		Phone:         aggregate.Phone(),
		Notes:         aggregate.Notes(),
		TotalAmount:   aggregate.TotalAmount().String(),
	}
	if !aggregate.CreatedAt().IsZero() {
		payload.CreatedAt = aggregate.CreatedAt().UTC().Format(time.RFC3339Nano)
	}
	if aggregate.UpdatedAt() != nil {
		payload.UpdatedAt = aggregate.UpdatedAt().UTC().Format(time.RFC3339Nano)
	}
	return payload
}

// FromDomainSlice converts a full order set to payload form.
func FromDomainSlice(aggregates []*order.Order) []Order {
	payloads := make([]Order, 0, len(aggregates))
	for _, aggregate := range aggregates {
		payloads = append(payloads, FromDomain(aggregate))
	}
	return payloads
}

// ToDomain rebuilds an order aggregate from its payload form. The payload
// must describe a consistent order; violations surface as validation
// errors from the domain constructors.
func (p Order) ToDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return nil, err
	}
	date, err := kernel.DateFromString(p.DeliveryDate)
	if err != nil {
		return nil, err
	}
	format, err := order.TimeFormatFromString(p.TimeFormat)
	if err != nil {
		return nil, err
	}
	method, err := order.PaymentMethodFromString(p.PaymentMethod)
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(p.Products))
	var productErrs []error
	for _, wp := range p.Products {
		price, err := kernel.MoneyFromString(wp.Price)
		if err != nil {
			productErrs = append(productErrs, err)
			continue
		}
		total, err := kernel.MoneyFromString(wp.Total)
		if err != nil {
			productErrs = append(productErrs, err)
			continue
		}
		product, err := order.RestoreProduct(wp.Name, wp.Quantity, wp.Unit, price, total)
		if err != nil {
			productErrs = append(productErrs, err)
			continue
		}
		products = append(products, product)
	}
	if err := errors.Join(productErrs...); err != nil {
		return nil, err
	}

	var createdAt time.Time
	if p.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, p.CreatedAt)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("createdAt", err)
		}
	}
	var updatedAt *time.Time
	if p.UpdatedAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, p.UpdatedAt)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt", err)
		}
		updatedAt = &parsed
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID: id,
		Details: order.Details{
			CustomerName: p.CustomerName,
			Address:      p.Address,
			DeliveryTime: p.DeliveryTime,
			TimeFormat:   format,
			DeliveryDate: date,
			Products:     products,
			Phone:        p.Phone,
			Notes:        p.Notes,
		},
		PaymentMethod: method,
		IsDelivered:   p.IsDelivered,
		RouteOrder:    p.RouteOrder,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	})
}

// ToDomainSlice rebuilds a full order set from payload form.
func ToDomainSlice(payloads []Order) ([]*order.Order, error) {
	aggregates := make([]*order.Order, 0, len(payloads))
	for _, payload := range payloads {
		aggregate, err := payload.ToDomain()
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}
