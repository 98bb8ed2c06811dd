// Package orderrepo persists order aggregates in PostgreSQL. It maps the
// aggregate to a single orders row with the product lines stored as a
// JSONB document, and reconstructs the aggregate through RestoreOrder so
// every invariant is re-checked on the way back in.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is the database row shape for an order aggregate. Product lines
// live in a JSONB column so a line edit never needs a second table.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerName  string         `gorm:"not null"`
	Address       string         `gorm:"not null"`
	DeliveryTime  string         `gorm:"not null"`
	TimeFormat    string         `gorm:"type:varchar(2);not null"`
	DeliveryDate  time.Time      `gorm:"type:date;not null;index"`
	Products      datatypes.JSON `gorm:"type:jsonb;not null"`
	PaymentMethod string
	IsDelivered   bool `gorm:"not null"`
	RouteOrder    int  `gorm:"not null"`
	Phone         string
	Notes         string
	TotalAmount   string    `gorm:"type:numeric;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// productDTO is the JSONB element shape for a single product line.
type productDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	id, err := uuid.Parse(aggregate.ID().String())
	if err != nil {
		return OrderDTO{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	lines := make([]productDTO, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		lines = append(lines, productDTO{
			Name:     p.Name(),
			Quantity: p.Quantity(),
			Unit:     p.Unit(),
			Price:    p.UnitPrice().String(),
			Total:    p.LineTotal().String(),
		})
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, errs.NewValueIsInvalidErrorWithCause("products", err)
	}

	return OrderDTO{
		ID:            id,
		CustomerName:  aggregate.CustomerName(),
		Address:       aggregate.Address(),
		DeliveryTime:  aggregate.DeliveryTime(),
		TimeFormat:    aggregate.TimeFormat().String(),
		DeliveryDate:  aggregate.DeliveryDate().Time(),
		Products:      datatypes.JSON(raw),
		PaymentMethod: aggregate.PaymentMethod().String(),
		IsDelivered:   aggregate.IsDelivered(),
		RouteOrder:    aggregate.RouteOrder(),
		Phone:         aggregate.Phone(),
		Notes:         aggregate.Notes(),
		TotalAmount:   aggregate.TotalAmount().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	date := kernel.DateOf(dto.DeliveryDate)
	format, err := order.TimeFormatFromString(dto.TimeFormat)
	if err != nil {
		return nil, err
	}
	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var lines []productDTO
	if err = json.Unmarshal(dto.Products, &lines); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("products", err)
	}
	products := make([]order.Product, 0, len(lines))
	for _, line := range lines {
		price, priceErr := kernel.MoneyFromString(line.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		total, totalErr := kernel.MoneyFromString(line.Total)
		if totalErr != nil {
			return nil, totalErr
		}
		product, productErr := order.RestoreProduct(line.Name, line.Quantity, line.Unit, price, total)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID: id,
		Details: order.Details{
			CustomerName: dto.CustomerName,
			Address:      dto.Address,
			DeliveryTime: dto.DeliveryTime,
			TimeFormat:   format,
			DeliveryDate: date,
			Products:     products,
			Phone:        dto.Phone,
			Notes:        dto.Notes,
		},
		PaymentMethod: method,
		IsDelivered:   dto.IsDelivered,
		RouteOrder:    dto.RouteOrder,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
